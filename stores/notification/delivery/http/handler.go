package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketfront/base/ctx"
	"github.com/x-xyz/marketfront/base/delivery"
	"github.com/x-xyz/marketfront/domain"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
)

type handler struct {
	notification domain.NotificationUseCase
	upgrader     websocket.Upgrader
}

func New(e *echo.Echo, notification domain.NotificationUseCase) {
	h := &handler{
		notification: notification,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	e.GET("/notifications", h.recent)
	e.GET("/notifications/stream", h.stream)
}

func (h *handler) recent(c echo.Context) error {
	limit := 0
	if s := c.QueryParam("limit"); s != "" {
		l, err := strconv.Atoi(s)
		if err != nil || l < 0 {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		limit = l
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.notification.Recent(limit))
}

// stream pushes every new notification to a websocket client as json.
func (h *handler) stream(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		ctx.WithField("err", err).Warn("upgrader.Upgrade failed")
		return nil
	}
	defer conn.Close()

	ch, cancel := h.notification.Subscribe()
	defer cancel()

	// the reader only exists to observe the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return nil
		case n, ok := <-ch:
			if !ok {
				return nil
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(n); err != nil {
				ctx.WithField("err", err).Info("conn.WriteJSON failed")
				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return nil
			}
		}
	}
}
