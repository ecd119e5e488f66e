package main

import (
	"time"

	"github.com/jessevdk/go-assets"
)

var _Assetsfef5cad78ae801798ec093dece5b201da28a9e1c = "<!DOCTYPE html>\n<html>\n  <head>\n    <title>\n      mirador\n    </title>\n    <style>\n      body {\n      margin: 5px;\n      font-family: monospace;\n      background-color: white;\n      color: #3f3f3f;\n      max-width: 70rem;\n      padding: 1rem;\n      font-size: 14px;\n      margin: auto;\n      }\n      .selector {\n      padding: 10px 0;\n      }\n      .row {\n      display: flex;\n      flex-wrap: wrap;\n      }\n      .cell {\n      width: 48%;\n      padding: 1%;\n      }\n      .wide {\n      width: 98%;\n      padding: 1%;\n      }\n      h1 {\n      font-weight: normal;\n      }\n    </style>\n    <script src=\"https://cdn.jsdelivr.net/npm/chart.js@2.9.3/dist/Chart.min.js\"></script>\n  </head>\n  <body>\n    <h1>mirador</h1>\n    <div class=\"selector\">\n      <form onsubmit=\"refresh(); return false\">\n        <input id=\"date\" type=\"date\">\n        <input id=\"month\" type=\"month\">\n        <select id=\"amount\">\n          <option value=\"3\">top 3</option>\n          <option value=\"5\" selected>top 5</option>\n          <option value=\"10\">top 10</option>\n        </select>\n        <input type=\"submit\" value=\"go\">\n      </form>\n    </div>\n    <div class=\"row\">\n      <div class=\"cell\"><canvas id=\"series\"></canvas></div>\n      <div class=\"cell\"><canvas id=\"episodes\"></canvas></div>\n      <div class=\"cell\"><canvas id=\"movies\"></canvas></div>\n      <div class=\"cell\"><canvas id=\"shows\"></canvas></div>\n      <div class=\"wide\"><canvas id=\"devices\"></canvas></div>\n      <div class=\"wide\"><canvas id=\"categories\"></canvas></div>\n      <div class=\"cell\"><canvas id=\"dropped_movies\"></canvas></div>\n      <div class=\"cell\"><canvas id=\"dropped_series\"></canvas></div>\n      <div class=\"wide\"><canvas id=\"countries\"></canvas></div>\n      <div class=\"wide\"><canvas id=\"durations\"></canvas></div>\n    </div>\n    <script>\n      var charts = {}\n\n      var palette = [\"#4363d8\", \"#e6194b\", \"#3cb44b\", \"#ffe119\", \"#f58231\",\n                     \"#911eb4\", \"#46f0f0\", \"#f032e6\", \"#bcf60c\", \"#008080\"]\n\n      function draw(id, type, title, labels, datasets) {\n        if (charts[id])\n          charts[id].destroy()\n        charts[id] = new Chart(document.getElementById(id), {\n          type: type,\n          data: {labels: labels, datasets: datasets},\n          options: {\n            title: {display: true, text: title},\n            scales: type == \"bar\" || type == \"line\"\n              ? {yAxes: [{ticks: {beginAtZero: true}}]}\n              : {}\n          }\n        })\n      }\n\n      function bars(id, title, rows, label, value) {\n        draw(id, \"bar\", title,\n             rows.map(function(r) { return r[label] }),\n             [{label: \"views\", backgroundColor: palette[0],\n               data: rows.map(function(r) { return r[value] })}])\n      }\n\n      function get(url, cb) {\n        fetch(url).then(function(r) { return r.json() }).then(cb)\n      }\n\n      function scopeQuery() {\n        var date = document.getElementById(\"date\").value\n        var month = document.getElementById(\"month\").value\n        var amount = document.getElementById(\"amount\").value\n        var qs = \"?amount=\" + amount\n        if (date)\n          qs += \"&date=\" + date\n        else if (month)\n          qs += \"&month=\" + month\n        return qs\n      }\n\n      function refresh() {\n        var qs = scopeQuery()\n\n        get(\"/api/movies\" + qs, function(rows) {\n          bars(\"movies\", \"most watched movies\", rows, \"title\", \"views\")\n        })\n        get(\"/api/series\" + qs, function(rows) {\n          bars(\"series\", \"most watched series\", rows, \"clean_title\", \"views\")\n        })\n        get(\"/api/shows\" + qs, function(rows) {\n          bars(\"shows\", \"most watched tv shows\", rows, \"title\", \"views\")\n        })\n        get(\"/api/episodes\" + qs, function(rows) {\n          bars(\"episodes\", \"most watched episodes\", rows, \"title\", \"views\")\n        })\n        get(\"/api/dropped/movies\" + qs, function(rows) {\n          bars(\"dropped_movies\", \"most dropped movies\", rows, \"title\", \"drops\")\n        })\n        get(\"/api/dropped/series\" + qs, function(rows) {\n          bars(\"dropped_series\", \"most dropped series\", rows, \"clean_title\", \"drops\")\n        })\n        get(\"/api/countries\" + qs, function(rows) {\n          bars(\"countries\", \"country of origin of views\", rows, \"country\", \"views\")\n        })\n\n        get(\"/api/devices\" + qs, function(rows) {\n          var perDevice = {}\n          var hours = []\n          rows.forEach(function(r) {\n            if (!perDevice[r.device])\n              perDevice[r.device] = []\n            perDevice[r.device].push(r.views)\n            if (hours.indexOf(r.hour) < 0)\n              hours.push(r.hour)\n          })\n          var datasets = Object.keys(perDevice).map(function(device, i) {\n            return {label: device, data: perDevice[device], fill: false,\n                    borderColor: palette[i % palette.length]}\n          })\n          draw(\"devices\", \"line\", \"device usage by hour\", hours, datasets)\n        })\n\n        get(\"/api/categories\" + qs, function(rows) {\n          var categories = []\n          var perType = {}\n          rows.forEach(function(r) {\n            if (categories.indexOf(r.category) < 0)\n              categories.push(r.category)\n            if (!perType[r.show_type])\n              perType[r.show_type] = {}\n            perType[r.show_type][r.category] = r.views\n          })\n          var datasets = Object.keys(perType).map(function(showType, i) {\n            return {label: showType, backgroundColor: palette[i % palette.length],\n                    data: categories.map(function(c) { return perType[showType][c] || 0 })}\n          })\n          draw(\"categories\", \"bar\", \"categories per show type\", categories, datasets)\n        })\n\n        get(\"/api/durations\" + qs, function(rows) {\n          draw(\"durations\", \"bar\", \"session length per device (seconds)\",\n               rows.map(function(r) { return r.device }),\n               [{label: \"p50\", backgroundColor: palette[0],\n                 data: rows.map(function(r) { return r.p50_seconds })},\n                {label: \"p90\", backgroundColor: palette[1],\n                 data: rows.map(function(r) { return r.p90_seconds })}])\n        })\n      }\n\n      refresh()\n    </script>\n  </body>\n</html>\n"

// Assets returns go-assets FileSystem
var Assets = assets.NewFileSystem(map[string][]string{"/": []string{"html"}, "/html": []string{}, "/html/t": []string{"index.tmpl"}}, map[string]*assets.File{
	"/html/t/index.tmpl": &assets.File{
		Path:     "/html/t/index.tmpl",
		FileMode: 0x1b4,
		Mtime:    time.Unix(1613936479, 1613936479252214920),
		Data:     []byte(_Assetsfef5cad78ae801798ec093dece5b201da28a9e1c),
	}, "/": &assets.File{
		Path:     "/",
		FileMode: 0x800001fd,
		Mtime:    time.Unix(1613937077, 1613937077592376736),
		Data:     nil,
	}, "/html": &assets.File{
		Path:     "/html",
		FileMode: 0x800001fd,
		Mtime:    time.Unix(1613897030, 1613897030036383713),
		Data:     nil,
	}, "/html/t": &assets.File{
		Path:     "/html/t",
		FileMode: 0x800001fd,
		Mtime:    time.Unix(1613936261, 1613936261820824037),
		Data:     nil,
	}}, "")
