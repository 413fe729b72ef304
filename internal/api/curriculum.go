package api

import (
	"encoding/json"
	"net/http"
)

// CurriculumModule is one entry of the fixed active-curriculum panel.
type CurriculumModule struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Icon   string `json:"icon"`
}

var curriculumModules = []CurriculumModule{
	{ID: "1", Name: "منهج صناعة المحتوى الأساسي", Status: "active", Icon: "book"},
	{ID: "2", Name: "منهج الـ VSL & Webinar المتقدم", Status: "active", Icon: "zap"},
	{ID: "3", Name: "مكتبة الهوكات والأساليب الفيروسية", Status: "active", Icon: "layers"},
}

func (h *APIHandler) CurriculumHandler(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(curriculumModules)
}
