package main

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"shareit/src/config"
	"shareit/src/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// proxy Forwards the inbound request verbatim to the shareit server and relays
// the response. Error bodies are reshaped to the {"error": ...} contract.
func proxy(ctx *gin.Context, body []byte) {
	url := config.GetServerURL() + ctx.Request.URL.RequestURI()
	req, err := http.NewRequestWithContext(ctx, ctx.Request.Method, url, bytes.NewReader(body))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if uid := ctx.GetHeader(middlewares.UserIDHeader); uid != "" {
		req.Header.Set(middlewares.UserIDHeader, uid)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		log.Printf("Error forwarding %s %s: %s\n", ctx.Request.Method, url, err.Error())
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "shareit server is unreachable"})
		return
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("Error reading response from %s: %s\n", url, err.Error())
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "invalid response from shareit server"})
		return
	}
	if res.StatusCode >= http.StatusBadRequest {
		msg := gjson.GetBytes(payload, "error").String()
		if msg == "" {
			msg = string(payload)
		}
		ctx.JSON(res.StatusCode, gin.H{"error": msg})
		return
	}
	if len(payload) == 0 {
		ctx.Status(res.StatusCode)
		return
	}
	ctx.Data(res.StatusCode, "application/json; charset=utf-8", payload)
}
