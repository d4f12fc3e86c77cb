package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	tmpl, err := template.ParseFS(templateFS, "templates/debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "summary":
		data = webUI.Dataset.Summary()
		title = "Launch Records - Summary"
	case "sites":
		data = webUI.Dataset.Sites()
		title = "Launch Records - Sites"
	case "records":
		data = webUI.Dataset.Records()
		title = "Launch Records - Records"
	case "layout":
		data = webUI.Layout
		title = "Dashboard - Layout"
	default:
		data = map[string]string{
			"error": "Please use one of the following: summary, sites, records, layout.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
