package httpserver

import "net/http"

// NewMux 组装完整路由：/api/* 走 Handler，其余是静态资源。
// 顺手把进度广播循环跑起来。
func NewMux(h *Handler, desktopDir, mobileDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	RegisterStaticRoutes(mux, desktopDir, mobileDir)
	go h.Hub().Run()
	return mux
}
