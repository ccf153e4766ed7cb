package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"stockwatch/internal/broker"
	"stockwatch/internal/config"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/model"
	"stockwatch/internal/server/middleware"
	"stockwatch/internal/server/request"
	"stockwatch/internal/server/response"
	"stockwatch/internal/service"
	"strconv"
)

type Server struct {
	server *http.Server
	stocks *service.StocksService
	broker broker.MessageBroker
	config config.ServerConfig
}

func New(
	stocks *service.StocksService,
	broker broker.MessageBroker,
	config config.ServerConfig,
) *Server {
	router := http.NewServeMux()

	s := &Server{
		server: &http.Server{
			Addr:    config.Address,
			Handler: middleware.Logging(router),
		},
		stocks: stocks,
		broker: broker,
		config: config,
	}

	router.HandleFunc("GET /health", s.health)
	router.HandleFunc("GET /stocks", s.getStocks)
	router.HandleFunc("GET /stocks/{symbol}", s.getStock)
	router.HandleFunc("POST /stocks", s.addStock)
	router.HandleFunc("GET /analyze/discounted", s.analyzeDiscounted)
	router.HandleFunc("GET /analyze/all", s.analyzeAll)
	router.HandleFunc("GET /analyze/industry/{industry}", s.analyzeIndustry)

	return s
}

func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := s.stocks.GetAllStocks(r.Context())
	if err != nil {
		slog.Error("failed to get all stocks", sl.Error(err))
		response.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, stocks)
}

func (s *Server) getStock(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")

	stock, err := s.stocks.GetStockBySymbol(r.Context(), symbol)
	if err != nil {
		slog.Error("failed to get stock by symbol", slog.String("symbol", symbol), sl.Error(err))
		response.WriteError(w, http.StatusInternalServerError, err)
		return
	} else if stock == nil {
		response.WriteError(w, http.StatusNotFound, fmt.Errorf("no stock with such symbol"))
		return
	}

	response.WriteJSON(w, http.StatusOK, stock)
}

func (s *Server) addStock(w http.ResponseWriter, r *http.Request) {
	var stock model.Stock
	if err := request.ReadJSON(r, &stock); err != nil {
		slog.Error("invalid stock", sl.Error(err))
		response.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid stock"))
		return
	}
	if stock.Symbol == "" {
		response.WriteError(w, http.StatusBadRequest, fmt.Errorf("symbol is required"))
		return
	}

	if err := s.stocks.AddStock(r.Context(), stock); err != nil {
		slog.Error("failed to add stock", sl.Stock(stock), sl.Error(err))
		response.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	response.WriteJSON(w, http.StatusNoContent, "")
}

func (s *Server) analyzeDiscounted(w http.ResponseWriter, r *http.Request) {
	s.publishJob(w, r, model.AnalysisJob{OnlyDiscounted: true})
}

func (s *Server) analyzeAll(w http.ResponseWriter, r *http.Request) {
	s.publishJob(w, r, model.AnalysisJob{OnlyDiscounted: false})
}

func (s *Server) analyzeIndustry(w http.ResponseWriter, r *http.Request) {
	onlyDiscounted := true
	if v := r.URL.Query().Get("only_discounted"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			response.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid only_discounted"))
			return
		}
		onlyDiscounted = parsed
	}

	s.publishJob(w, r, model.AnalysisJob{
		Industry:       r.PathValue("industry"),
		OnlyDiscounted: onlyDiscounted,
	})
}

func (s *Server) publishJob(w http.ResponseWriter, r *http.Request, job model.AnalysisJob) {
	chatId, err := strconv.ParseInt(r.URL.Query().Get("chat_id"), 10, 64)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, fmt.Errorf("invalid chat_id"))
		return
	}
	job.ChatId = chatId

	ctx, cancel := context.WithTimeout(r.Context(), s.config.BrokerTimeoutSec)
	defer cancel()

	if err := s.broker.PublishJob(ctx, job); err != nil {
		slog.Error("failed to publish analysis job", sl.Job(job), sl.Error(err))
		response.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	slog.Info("analysis job published", sl.Job(job))
	response.WriteJSON(w, http.StatusAccepted, map[string]string{"message": "job has been started"})
}
