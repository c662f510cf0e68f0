package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeDevice(t *testing.T) {
	chrome := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
	got := DescribeDevice(chrome)
	assert.Contains(t, got, "Chrome 127")
	assert.Contains(t, got, "on")

	assert.Empty(t, DescribeDevice(""))
	assert.Empty(t, DescribeDevice("   "))
}

func TestMajorVersion(t *testing.T) {
	assert.Equal(t, "127", majorVersion("127.0.0.0"))
	assert.Equal(t, "14", majorVersion("14"))
}
