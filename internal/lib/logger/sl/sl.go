package sl

import (
	"log/slog"
)

// Err はエラーを "error" キーの slog.Attr に変換します。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
