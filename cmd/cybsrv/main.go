package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	cyberiadaml "github.com/go-cyberiada/cyberiadaml"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func dialectFromString(s string) (cyberiadaml.Dialect, error) {
	switch s {
	case "", "auto":
		return cyberiadaml.DialectAuto, nil
	case "native":
		return cyberiadaml.DialectNative, nil
	case "legacy", "yed":
		return cyberiadaml.DialectLegacy, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q", s)
	}
}

func handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body struct {
		GraphML string `json:"graphml"`
		Dialect string `json:"dialect"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.GraphML == "" {
		writeError(w, http.StatusBadRequest, "missing field: graphml")
		return
	}

	dialect, err := dialectFromString(body.Dialect)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := cyberiadaml.DecodeBytes([]byte(body.GraphML), dialect, cyberiadaml.Options{})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, decodeSummary(doc))
}

func handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body struct {
		GraphML       string `json:"graphml"`
		SourceDialect string `json:"sourceDialect"`
		TargetDialect string `json:"targetDialect"`
		SkipGeometry  bool   `json:"skipGeometry"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	srcDialect, err := dialectFromString(body.SourceDialect)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dstDialect, err := dialectFromString(body.TargetDialect)
	if err != nil || dstDialect == cyberiadaml.DialectAuto {
		writeError(w, http.StatusBadRequest, "targetDialect must be native or legacy")
		return
	}

	doc, err := cyberiadaml.DecodeBytes([]byte(body.GraphML), srcDialect, cyberiadaml.Options{})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := cyberiadaml.Encode(doc, dstDialect, cyberiadaml.EncodeFlags{SkipGeometry: body.SkipGeometry}, &buf); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"graphml": buf.String()})
}

func handleDiff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var body struct {
		GraphMLA       string `json:"graphmlA"`
		GraphMLB       string `json:"graphmlB"`
		IgnoreComments bool   `json:"ignoreComments"`
		RequireInitial bool   `json:"requireInitial"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	docA, err := cyberiadaml.DecodeBytes([]byte(body.GraphMLA), cyberiadaml.DialectAuto, cyberiadaml.Options{})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("graphmlA: %v", err))
		return
	}
	docB, err := cyberiadaml.DecodeBytes([]byte(body.GraphMLB), cyberiadaml.DialectAuto, cyberiadaml.Options{})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("graphmlB: %v", err))
		return
	}
	if len(docA.StateMachines) == 0 || len(docB.StateMachines) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "both documents must decode at least one state machine")
		return
	}

	res, _ := cyberiadaml.Diff(docA.StateMachines[0], docB.StateMachines[0], cyberiadaml.DiffOptions{
		IgnoreComments: body.IgnoreComments,
		RequireInitial: body.RequireInitial,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"verdict":        res.Verdict.String(),
		"differingNodes": len(res.DifferingNodes),
		"newNodes":       len(res.NewNodes),
		"missingNodes":   len(res.MissingNodes),
		"differingEdges": len(res.DifferingEdges),
		"newEdges":       len(res.NewEdges),
		"missingEdges":   len(res.MissingEdges),
	})
}

func decodeSummary(doc *cyberiadaml.Document) map[string]any {
	sms := make([]map[string]any, len(doc.StateMachines))
	for i, sm := range doc.StateMachines {
		sms[i] = map[string]any{
			"name":      sm.Name,
			"nodeCount": len(sm.TopLevelNodes()),
			"edgeCount": len(sm.Edges),
		}
	}
	return map[string]any{
		"format":        doc.FormatTag,
		"stateMachines": sms,
	}
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/decode", handleDecode)
	mux.HandleFunc("/encode", handleEncode)
	mux.HandleFunc("/diff", handleDiff)

	addr := fmt.Sprintf(":%d", *port)
	fmt.Printf("cybsrv listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "server error: %v\n", err)
	}
}
