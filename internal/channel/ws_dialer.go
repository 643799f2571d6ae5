package channel

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// wsDialer — адаптер gorilla/websocket под интерфейс dialer.
type wsDialer struct {
	d      *websocket.Dialer
	header http.Header
}

func newWSDialer(header http.Header) *wsDialer {
	return &wsDialer{
		d: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: 10 * time.Second,
		},
		header: header,
	}
}

func (w *wsDialer) DialContext(ctx context.Context, url string) (conn, error) {
	wsc, resp, err := w.d.DialContext(ctx, url, w.header)
	if err != nil {
		// при неудачном рукопожатии resp содержит ответ сервера
		if resp != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("dial %s: %w (http %d)", url, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return wsc, nil
}
