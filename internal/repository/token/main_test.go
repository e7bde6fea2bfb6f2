package token

import (
	"os"
	"testing"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger(&config.Config{Log: config.LogConfig{Level: "error"}})
	os.Exit(m.Run())
}
