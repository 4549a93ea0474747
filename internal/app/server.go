package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Lenostatos/Orinoco-2/internal/catalog"
	"github.com/Lenostatos/Orinoco-2/internal/ctxlog"
	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/Lenostatos/Orinoco-2/internal/graph"
)

const shutdownTimeout = 5 * time.Second

type inputView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	ArrayInput  bool   `json:"arrayInput,omitempty"`
}

type outputView struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type functionView struct {
	ID          string      `json:"id"`
	Names       []string    `json:"names"`
	Description string      `json:"description,omitempty"`
	Inputs      []inputView `json:"inputs"`
	Output      outputView  `json:"output"`
}

type categoryView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Functions []string `json:"functions"`
}

type invokeRequest struct {
	Args []json.RawMessage `json:"args"`
}

type invokeResponse struct {
	Value json.RawMessage `json:"value"`
	Type  string          `json:"type"`
}

type connectRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Kind     string `json:"kind,omitempty"`
	ArgIndex *int   `json:"argIndex,omitempty"`
}

func newFunctionView(d *catalog.Descriptor) functionView {
	v := functionView{
		ID:          d.ID,
		Names:       d.Names,
		Description: d.Description,
		Inputs:      make([]inputView, len(d.Inputs)),
		Output:      outputView{Type: string(d.Output.Type), Description: d.Output.Description},
	}
	for i, in := range d.Inputs {
		v.Inputs[i] = inputView{
			Name:        in.Name,
			Type:        string(in.Type),
			Description: in.Description,
			ArrayInput:  in.ArrayInput,
		}
	}
	return v
}

// Handler returns the HTTP API of the application.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.HandleFunc("GET /api/functions", a.listFunctionsHandler)
	mux.HandleFunc("GET /api/functions/{id}", a.getFunctionHandler)
	mux.HandleFunc("POST /api/functions/{id}/invoke", a.invokeHandler)
	mux.HandleFunc("GET /api/categories", a.listCategoriesHandler)
	mux.HandleFunc("GET /api/graph", a.graphHandler)
	mux.HandleFunc("POST /api/graph/nodes", a.addNodeHandler)
	mux.HandleFunc("DELETE /api/graph/nodes/{id}", a.removeNodeHandler)
	mux.HandleFunc("POST /api/graph/edges", a.connectHandler)
	mux.HandleFunc("DELETE /api/graph/edges/{id}", a.disconnectHandler)
	return mux
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) listFunctionsHandler(w http.ResponseWriter, r *http.Request) {
	fns := a.catalog.ListFunctions()
	views := make([]functionView, len(fns))
	for i, d := range fns {
		views[i] = newFunctionView(d)
	}
	a.writeJSON(w, http.StatusOK, views)
}

func (a *App) getFunctionHandler(w http.ResponseWriter, r *http.Request) {
	d, err := a.catalog.Resolve(r.PathValue("id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, newFunctionView(d))
}

func (a *App) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	cats := a.catalog.ListCategories()
	views := make([]categoryView, len(cats))
	for i, c := range cats {
		views[i] = categoryView{ID: c.ID, Name: c.Name, Functions: c.FunctionIDs}
	}
	a.writeJSON(w, http.StatusOK, views)
}

func (a *App) invokeHandler(w http.ResponseWriter, r *http.Request) {
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error(), Kind: "bad_request"})
		return
	}
	args, err := ctyval.ParseJSONList(req.Args)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "bad_request"})
		return
	}

	res, err := a.catalog.InvokeByName(r.Context(), r.PathValue("id"), args)
	if err != nil {
		a.writeError(w, err)
		return
	}
	raw, err := ctyval.MarshalJSON(res.Value)
	if err != nil {
		a.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	a.writeJSON(w, http.StatusOK, invokeResponse{Value: raw, Type: string(res.Type)})
}

func (a *App) graphHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.graph.Snapshot())
}

func (a *App) addNodeHandler(w http.ResponseWriter, r *http.Request) {
	var n graph.Node
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error(), Kind: "bad_request"})
		return
	}
	if n.Kind == graph.KindFunction && n.Data.FunctionID != "" {
		if _, ok := a.catalog.FindByID(n.Data.FunctionID); !ok {
			a.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error: fmt.Sprintf("unknown function '%s'", n.Data.FunctionID),
				Kind:  "unknown_function",
			})
			return
		}
	}
	added, err := a.graph.AddNode(n)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, added)
}

func (a *App) removeNodeHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.graph.RemoveNode(r.PathValue("id")); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) connectHandler(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error(), Kind: "bad_request"})
		return
	}
	e, err := a.graph.Connect(req.Source, req.Target)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, e)
}

func (a *App) disconnectHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.graph.Disconnect(r.PathValue("id")); err != nil {
		a.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Error("Failed to write response.", "error", err)
	}
}

// writeError maps catalog and graph errors to HTTP statuses.
func (a *App) writeError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var (
		coercionErr *catalog.TypeCoercionError
		invalidErr  *catalog.InvalidArgumentError
	)
	switch {
	case errors.Is(err, catalog.ErrUnknownFunction):
		status, resp.Kind = http.StatusNotFound, "unknown_function"
	case errors.Is(err, catalog.ErrArityMismatch):
		status, resp.Kind = http.StatusBadRequest, "arity_mismatch"
	case errors.As(err, &coercionErr):
		status, resp.Kind = http.StatusBadRequest, "type_coercion_failed"
		resp.ArgIndex = &coercionErr.ArgIndex
	case errors.As(err, &invalidErr):
		status, resp.Kind = http.StatusUnprocessableEntity, "invalid_argument"
		if invalidErr.ArgIndex >= 0 {
			resp.ArgIndex = &invalidErr.ArgIndex
		}
	case errors.Is(err, graph.ErrNodeNotFound), errors.Is(err, graph.ErrEdgeNotFound):
		status, resp.Kind = http.StatusNotFound, "not_found"
	case errors.Is(err, graph.ErrDuplicateNode), errors.Is(err, graph.ErrDuplicateEdge):
		status, resp.Kind = http.StatusConflict, "conflict"
	case errors.Is(err, graph.ErrInvalidNode):
		status, resp.Kind = http.StatusBadRequest, "invalid_node"
	}

	if status == http.StatusInternalServerError {
		a.logger.Error("Request failed.", "error", err)
	}
	a.writeJSON(w, status, resp)
}

// Serve runs the HTTP API on the configured port until ctx is cancelled,
// then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	logger := ctxlog.FromContext(a.ctx)
	addr := fmt.Sprintf(":%d", a.config.Port)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	a.httpServer = &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return a.ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API server starting", "address", ln.Addr().String())
		// ErrServerClosed is the normal result of a graceful shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("API server failed unexpectedly", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	if err := a.closeServer(context.Background()); err != nil {
		return err
	}
	return <-errCh
}

func (a *App) closeServer(ctx context.Context) error {
	logger := ctxlog.FromContext(a.ctx)
	if a.httpServer == nil {
		logger.Debug("API server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down API server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logger.Error("API server shutdown failed", "error", err)
		return err
	}
	a.httpServer = nil
	logger.Debug("API server shut down gracefully.")
	return nil
}
