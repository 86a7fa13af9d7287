package handler_test

import (
	"fmt"
	"log/slog"

	"github.com/philipp01105/tablelog/core"
	"github.com/philipp01105/tablelog/handler"
)

func ExampleNewTableHandler() {
	h := handler.NewTableHandler(handler.TableConfig{
		Columns: []string{"level", "message"},
		SendTo: func(rendered string) error {
			fmt.Print(rendered)
			return nil
		},
		FlushIf: handler.FlushAfter(2),
	})

	h.Handle(&core.Record{Level: core.InfoLevel, Message: "service started"})
	h.Handle(&core.Record{Level: core.WarnLevel, Message: "cache miss"})
	// Output:
	// level | message
	// INFO  | service started
	// WARN  | cache miss
}

func ExampleNewSlogHandler() {
	th := handler.NewTableHandler(handler.TableConfig{
		Columns: []string{"level", "message", "user"},
		SendTo: func(rendered string) error {
			fmt.Print(rendered)
			return nil
		},
		FlushIf: handler.FlushOnLevel(core.ErrorLevel),
	})
	log := slog.New(handler.NewSlogHandler(th, core.DebugLevel))

	log.Info("login ok", "user", "alice")
	log.Error("login failed", "user", "mallory")
	// Output:
	// level | message      | user
	// INFO  | login ok     | alice
	// ERROR | login failed | mallory
}
