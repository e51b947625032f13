package fiberlog

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid       = "pid"
	TagLatency   = "latency"
	TagStatus    = "status"
	TagMethod    = "method"
	TagPath      = "path"
	TagIP        = "ip"
	TagUserAgent = "user_agent"
	TagBody      = "body"
	TagResBody   = "res_body"
	RequestID    = "request_id"
)

// bodies over this size are logged as their length only
const maxLoggedBody = 4096

// FuncTag computes the value of one log field.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid:       func(c *fiber.Ctx, d *data) interface{} { return d.pid },
		TagLatency:   func(c *fiber.Ctx, d *data) interface{} { return d.end.Sub(d.start).String() },
		TagStatus:    func(c *fiber.Ctx, d *data) interface{} { return c.Response().StatusCode() },
		TagMethod:    func(c *fiber.Ctx, d *data) interface{} { return c.Method() },
		TagPath:      func(c *fiber.Ctx, d *data) interface{} { return c.Path() },
		TagIP:        func(c *fiber.Ctx, d *data) interface{} { return c.IP() },
		TagUserAgent: func(c *fiber.Ctx, d *data) interface{} { return c.Get(fiber.HeaderUserAgent) },
		TagBody:      func(c *fiber.Ctx, d *data) interface{} { return loggedBody(c.Get(fiber.HeaderContentType), c.Body()) },
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			return loggedBody(string(c.Response().Header.ContentType()), c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			if id, ok := c.Locals("requestid").(string); ok && id != "" {
				return id
			}
			return c.Get(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// loggedBody keeps passwords and binary payloads out of the request log.
func loggedBody(contentType string, body []byte) interface{} {
	if len(body) == 0 {
		return ""
	}
	if len(body) > maxLoggedBody || !isTextual(contentType) {
		return len(body)
	}
	return maskPassword(string(body))
}

func isTextual(contentType string) bool {
	return contentType == "" ||
		strings.Contains(contentType, fiber.MIMEApplicationJSON) ||
		strings.Contains(contentType, fiber.MIMETextPlain)
}

var passwordField = regexp.MustCompile(`"password"\s*:\s*"[^"]*"`)

func maskPassword(body string) string {
	return passwordField.ReplaceAllString(body, `"password":"***"`)
}
