package web

import "github.com/AVick23/ML-Manager/internal/web/webpath"

type data struct {
	Title string
	Path  map[string]string
	Data  map[string]any
}

func newData(title string) data {
	return data{
		Title: title,
		Path:  webpath.Path(),
		Data:  make(map[string]any),
	}
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}
