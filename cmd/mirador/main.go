package main

import (
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io/ioutil"
	"net/http"
	_ "net/http/pprof"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/flowtv/mirador/pkg/depths"
	"github.com/flowtv/mirador/pkg/flow"
	"github.com/flowtv/mirador/pkg/reports"
)

func intOrDefault(s string, n int) int {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return n
	}
	return int(v)
}

type server struct {
	events    []flow.ViewingEvent
	metadata  []flow.ContentMetadata
	countries flow.CountryNames
	cache     *lru.Cache
}

// scoped resolves ?date=YYYY-MM-DD / ?month=YYYY-MM into the matching
// event subsequence. No scope means the whole dataset.
func (s *server) scoped(c *gin.Context) ([]flow.ViewingEvent, string, error) {
	date := c.Query("date")
	month := c.Query("month")
	if date != "" && month != "" {
		return nil, "", errors.New("pass either date or month, not both")
	}
	if date != "" {
		ev, err := reports.ByDay(s.events, date)
		return ev, "d:" + date, err
	}
	if month != "" {
		ev, err := reports.ByMonth(s.events, month)
		return ev, "m:" + month, err
	}
	return s.events, "all", nil
}

// report runs one aggregation behind the lru cache. The tables are
// immutable once loaded so a payload never goes stale.
func (s *server) report(c *gin.Context, name string, build func(scoped []flow.ViewingEvent, amount int) (interface{}, error)) {
	scoped, scopeKey, err := s.scoped(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	amount := intOrDefault(c.Query("amount"), 5)
	key := depths.Hashs(fmt.Sprintf("%s/%s/%d", name, scopeKey, amount))
	if v, ok := s.cache.Get(key); ok {
		c.JSON(200, v)
		return
	}
	out, err := build(scoped, amount)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	s.cache.Add(key, out)
	c.JSON(200, out)
}

func restrict(rows []reports.JoinedRow, match func(string) bool) []reports.JoinedRow {
	out := []reports.JoinedRow{}
	for _, r := range rows {
		if r.Meta != nil && match(r.Meta.ShowType) {
			out = append(out, r)
		}
	}
	return out
}

func loadTemplate() (*template.Template, error) {
	t := template.New("")
	for name, file := range Assets.Files {
		if file.IsDir() || !strings.HasSuffix(name, ".tmpl") {
			continue
		}
		h, err := ioutil.ReadAll(file)
		if err != nil {
			return nil, err
		}
		t, err = t.New(name).Parse(string(h))
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}

func main() {
	var eventsFile = flag.String("events", "data/train.csv", "viewing event log (csv, or .sz for snappy compressed)")
	var metadataFile = flag.String("metadata", "data/metadata.csv", "content metadata table (semicolon separated csv)")
	var countriesFile = flag.String("countries", "data/iso_3166_1.json", "iso 3166-1 alpha-2 code to name table (json object)")
	var bind = flag.String("bind", ":9002", "bind to")
	var cacheSize = flag.Int("cache-size", 128, "how many report payloads to keep cached")
	var verbose = flag.Bool("verbose", false, "print info level logs to stdout")
	var prometheusListenAddress = flag.String("prometheus", "false", "true to enable prometheus (you can also specify a listener address)")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.InfoLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.SetLevel(log.WarnLevel)
	}

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	events, err := flow.LoadEvents(*eventsFile)
	if err != nil {
		log.Fatal(err)
	}
	metadata, err := flow.LoadMetadata(*metadataFile)
	if err != nil {
		log.Fatal(err)
	}
	countries, err := flow.LoadCountryNames(*countriesFile)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("loaded %d events, %d metadata rows, %d countries", len(events), len(metadata), len(countries))

	cache, err := lru.New(*cacheSize)
	if err != nil {
		log.Fatal(err)
	}
	s := &server{events: events, metadata: metadata, countries: countries, cache: cache}

	r := gin.Default()

	if listenerAddress := *prometheusListenAddress; len(listenerAddress) > 0 && listenerAddress != "false" {
		prometheus := ginprometheus.NewPrometheus("mirador")
		prometheus.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			url := c.Request.URL.Path
			url = strings.Replace(url, "//", "/", -1)
			return url
		}
		if listenerAddress != "true" {
			prometheus.SetListenAddress(listenerAddress)
		}
		prometheus.Use(r)
	}

	r.Use(cors.Default())
	r.Use(gin.Recovery())

	t, err := loadTemplate()
	if err != nil {
		log.Fatal(err)
	}
	r.SetHTMLTemplate(t)

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "/html/t/index.tmpl", gin.H{})
	})

	r.GET("/api/movies", func(c *gin.Context) {
		s.report(c, "movies", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.TopMovies(reports.Join(scoped, s.metadata), amount), nil
		})
	})

	r.GET("/api/series", func(c *gin.Context) {
		s.report(c, "series", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.TopSeries(reports.Join(scoped, s.metadata), s.metadata, amount), nil
		})
	})

	r.GET("/api/shows", func(c *gin.Context) {
		s.report(c, "shows", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.TopShows(reports.Join(scoped, s.metadata), s.metadata, amount), nil
		})
	})

	r.GET("/api/episodes", func(c *gin.Context) {
		s.report(c, "episodes", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.TopEpisodes(reports.Join(scoped, s.metadata), amount), nil
		})
	})

	r.GET("/api/devices", func(c *gin.Context) {
		s.report(c, "devices", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.DeviceUsageByHour(scoped, s.events)
		})
	})

	r.GET("/api/categories", func(c *gin.Context) {
		s.report(c, "categories", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.CategoryPerShowType(reports.Join(scoped, s.metadata), amount), nil
		})
	})

	r.GET("/api/countries", func(c *gin.Context) {
		s.report(c, "countries", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.CountryOfOrigin(reports.Join(scoped, s.metadata), s.countries), nil
		})
	})

	r.GET("/api/dropped/movies", func(c *gin.Context) {
		s.report(c, "dropped/movies", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			rows := restrict(reports.Join(scoped, s.metadata), func(st string) bool { return st == flow.ShowTypeMovie })
			return reports.PotentiallyDropped(rows, s.metadata, amount)
		})
	})

	r.GET("/api/dropped/series", func(c *gin.Context) {
		s.report(c, "dropped/series", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			rows := restrict(reports.Join(scoped, s.metadata), flow.IsSeriesLike)
			return reports.PotentiallyDropped(rows, s.metadata, amount)
		})
	})

	r.GET("/api/durations", func(c *gin.Context) {
		s.report(c, "durations", func(scoped []flow.ViewingEvent, amount int) (interface{}, error) {
			return reports.SessionStatsPerDevice(scoped), nil
		})
	})

	log.Panic(r.Run(*bind))
}
