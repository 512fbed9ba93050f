// Package logger provides adapters for popular logger libraries to work with btreeset's Logger interface.
//
// The adapters allow you to use your existing logger with btreeset without writing boilerplate.
// Note that the standard library's slog.Logger already implements btreeset.Logger directly.
//
// Example with zap:
//
//	import (
//	    "btreeset"
//	    "btreeset/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree, err := btreeset.New[int](4, btreeset.WithLogger[int](logger.NewZap(zapLogger)))
//	    _, _ = tree, err
//	}
package logger
