package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
)

// ErrorBody はステータス 500 の時に返す JSON ボディを作ります。
// エンドポイント毎にエラーの形が違うため、ルート毎に渡します。
type ErrorBody func(message string) any

// RecoverJSON はハンドラ内の panic を回収し、スタックトレースをログに出力して
// 500 の JSON エラーを返します。プロセスは終了しません。
func RecoverJSON(message string, body ErrorBody) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				GetLogger(r.Context()).Error("Panic recovered",
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)

				payload, err := json.Marshal(body(message))
				if err != nil {
					payload = []byte(`{"error":"internal server error"}`)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(payload)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
