package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope writes the {message, <key>: record} success shape used by the
// create/update routes. List and get routes return the records bare.
func Envelope(c *gin.Context, status int, msg, key string, record interface{}) {
	c.JSON(status, gin.H{"message": msg, key: record})
}

// Fail writes the {message, error} shape. err may be nil, in which case only
// the message is sent.
func Fail(c *gin.Context, status int, msg string, err error) {
	body := gin.H{"message": msg}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
