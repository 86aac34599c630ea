package main

import (
	"github.com/sarigr/uni-schedule/core/logger"
	"github.com/sarigr/uni-schedule/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
