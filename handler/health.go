package handler

import (
	"lovebridge-gateway/request"
)

type Health struct{}

func NewHealth() Health {
	return Health{}
}

func (h Health) Handle(ctx *request.Context) error {
	return writeJson(ctx.ResponseWriter(), map[string]string{"status": "ok"})
}
