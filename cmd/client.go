package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type clientOpts struct {
	verbose bool // controls whether request/response documents are logged
}

type clientContext struct {
	reqID  string         // internally generated
	start  time.Time      // internally set
	opts   clientOpts     // options set by client
	claims *serviceClaims // information about this user, if authenticated
	ginCtx *gin.Context   // gin context
}

func boolOptionWithFallback(opt string, fallback bool) bool {
	switch strings.ToLower(opt) {
	case "true", "1", "t":
		return true

	case "false", "0", "f":
		return false
	}

	return fallback
}

func (c *clientContext) init(s *serviceContext, ctx *gin.Context) {
	c.ginCtx = ctx

	c.start = time.Now()
	c.reqID = fmt.Sprintf("%08x", s.randomSource.Uint32())

	if ctx == nil {
		return
	}

	// get claims, if any
	if val, ok := ctx.Get("claims"); ok == true {
		c.claims = val.(*serviceClaims)
	}

	c.opts.verbose = boolOptionWithFallback(ctx.Query("verbose"), false)
}

func (c *clientContext) logRequest() {
	c.log("------------------------------[ NEW REQUEST ]------------------------------")

	query := ""
	if c.ginCtx.Request.URL.RawQuery != "" {
		query = fmt.Sprintf("?%s", c.ginCtx.Request.URL.RawQuery)
	}

	claimsStr := ""
	if c.claims != nil {
		claimsStr = fmt.Sprintf("  [%s]", c.claims.Subject)
	}

	c.log("[REQUEST] %s %s%s%s", c.ginCtx.Request.Method, c.ginCtx.Request.URL.Path, query, claimsStr)
}

func (c *clientContext) logResponse(status int, err error) {
	msg := fmt.Sprintf("[RESPONSE] status: %d, elapsed: %dms", status, time.Since(c.start).Milliseconds())

	if err != nil {
		msg = msg + fmt.Sprintf(", error: %s", err.Error())
	}

	c.log("%s", msg)
}

func (c *clientContext) printf(prefix, format string, args ...interface{}) {
	str := fmt.Sprintf(format, args...)

	if prefix != "" {
		str = strings.Join([]string{prefix, str}, " ")
	}

	log.Printf("[%s] %s", c.reqID, str)
}

func (c *clientContext) log(format string, args ...interface{}) {
	c.printf("", format, args...)
}

func (c *clientContext) err(format string, args ...interface{}) {
	c.printf("ERROR:", format, args...)
}
