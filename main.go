package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Powergrid/internal/calc/batch"
	"Powergrid/internal/calc/loss"
	"Powergrid/internal/calc/reliability"
	"Powergrid/internal/calc/report"
	"Powergrid/internal/calc/workbook"
	"Powergrid/internal/config"
	"Powergrid/internal/form"
	"Powergrid/internal/metrics"
	"Powergrid/internal/ratelimit"
	"Powergrid/internal/utils"
	"Powergrid/internal/web"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func CORS(router *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		router.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func HandleList(router *mux.Router, cfg *config.Config, logger *zap.Logger) {
	controller := form.Controller{Strict: cfg.Form.Strict, Currency: cfg.Form.Currency}

	router.Use(accessLog(logger))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	limiter := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	apiController := controller
	apiController.Source = "api"
	formH := &form.Handler{Controller: apiController}
	api.HandleFunc("/form/reliability", formH.Reliability).Methods("POST")
	api.HandleFunc("/form/loss", formH.Loss).Methods("POST")

	reliabilityH := &reliability.Handler{}
	lossH := &loss.Handler{Currency: cfg.Form.Currency}
	batchH := &batch.Handler{}
	workbookH := &workbook.Handler{Log: logger}
	reportH := &report.Handler{Log: logger}

	api.HandleFunc("/tools/reliability/calc", reliabilityH.Calc).Methods("POST")
	api.HandleFunc("/tools/loss/calc", lossH.Calc).Methods("POST")
	api.HandleFunc("/tools/batch/reliability", batchH.Reliability).Methods("POST")
	api.HandleFunc("/tools/batch/loss", batchH.Loss).Methods("POST")
	api.HandleFunc("/tools/workbook/import", workbookH.Import).Methods("POST")
	api.HandleFunc("/tools/workbook/export", workbookH.Export).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	webH := &web.Handler{Controller: controller, Log: logger}
	router.HandleFunc("/", webH.Page).Methods("GET")
	router.HandleFunc("/", webH.Submit).Methods("POST")
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		// no logger yet
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger, err := utils.NewLogger(cfg.Logging.Level, cfg.Logging.JSON)
	if err != nil {
		os.Stderr.WriteString("build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.Fatal("register metrics", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	router := mux.NewRouter()
	HandleList(router, cfg, logger)

	server := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("address", cfg.Server.Address),
			zap.Bool("tls", cfg.Server.TLSEnabled()),
			zap.Bool("strict_form", cfg.Form.Strict),
		)
		var err error
		if cfg.Server.TLSEnabled() {
			err = server.ListenAndServeTLS(cfg.Server.TLSCert, cfg.Server.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	logger.Info("server stopped")
}
