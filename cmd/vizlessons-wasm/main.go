// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build js && wasm

// Command vizlessons-wasm runs the lessons' interactive demos in the
// browser. Load it after Chart.js with wasm_exec.js:
//
//	GOOS=js GOARCH=wasm go build -o vizlessons.wasm ./cmd/vizlessons-wasm
//
// The page may set window.vizlessonsTheme to YAML theme overrides and
// window.vizlessonsLogLevel to a log level before the module starts.
package main

import (
	"fmt"
	"os"
	"syscall/js"

	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/internal/webhost"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"go.uber.org/zap"
)

func main() {
	logger, err := log.New(log.Config{Level: global("vizlessonsLogLevel", "warn"), Format: "json"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "vizlessons: %v\n", err)
		logger = zap.NewNop()
	}
	log.SetLogger(logger)

	th := theme.Default()
	if overrides := global("vizlessonsTheme", ""); overrides != "" {
		if th, err = theme.Parse([]byte(overrides)); err != nil {
			log.Error("Invalid theme overrides, using the default theme", zap.Error(err))
			th = theme.Default()
		}
	}

	start := func() {
		report, err := webhost.Start(webhost.Options{Theme: th, Logger: logger})
		if err != nil {
			log.Error("Failed to start lessons", zap.Error(err))
			return
		}
		webhost.Publish(report)
	}

	doc := js.Global().Get("document")
	if doc.Get("readyState").String() == "loading" {
		var onReady js.Func
		onReady = js.FuncOf(func(js.Value, []js.Value) any {
			onReady.Release()
			start()
			return nil
		})
		doc.Call("addEventListener", "DOMContentLoaded", onReady)
	} else {
		start()
	}

	// Event handlers run on this program; keep it alive.
	select {}
}

func global(name, fallback string) string {
	v := js.Global().Get(name)
	if v.Type() != js.TypeString {
		return fallback
	}
	return v.String()
}
