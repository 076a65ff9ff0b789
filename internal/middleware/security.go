package middleware

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"

	"github.com/jasonwhite/github-types/internal/contextkeys"
)

// VerifySignature is a chi middleware that validates the
// X-Hub-Signature-256 header GitHub sends with each delivery. If secret
// is empty the hook was configured without one and verification is
// skipped.
func VerifySignature(logger *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Read the entire request body so it can be both verified
			// and handed to the next handler.
			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Error("Failed to read request body", "error", err)
				http.Error(w, "Cannot read request body", http.StatusInternalServerError)
				return
			}
			r.Body.Close()

			// Restore the body so the next handler can read it.
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

			if secret != "" {
				signature := r.Header.Get("X-Hub-Signature-256")
				if signature == "" {
					logger.Warn("Missing X-Hub-Signature-256 header")
					http.Error(w, "Missing X-Hub-Signature-256 header", http.StatusForbidden)
					return
				}

				// Compute the expected HMAC-SHA256 signature.
				mac := hmac.New(sha256.New, []byte(secret))
				mac.Write(bodyBytes)
				expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))

				// Compare in constant time to prevent timing attacks.
				if !hmac.Equal([]byte(signature), []byte(expected)) {
					logger.Warn("Invalid signature received",
						"received_signature", signature,
					)
					http.Error(w, "Invalid signature", http.StatusForbidden)
					return
				}
			}

			ctx := context.WithValue(r.Context(), contextkeys.RequestBodyKey, bodyBytes)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
