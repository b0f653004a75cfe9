package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ehrlich-b/cubesolver/internal/cube"
	"github.com/ehrlich-b/cubesolver/internal/notation"
	"github.com/ehrlich-b/cubesolver/internal/render"
	"github.com/ehrlich-b/cubesolver/internal/search"
)

type solveRequest struct {
	Scramble string `json:"scramble"`
	MaxDepth int    `json:"max_depth"`
}

type solveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
}

type showRequest struct {
	Scramble string `json:"scramble"`
}

type showResponse struct {
	Net string `json:"net"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	const html = `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        input, button { padding: 10px; margin: 5px; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; white-space: pre; font-family: monospace; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <form id="solveForm">
            <label>Scramble:</label><br>
            <input type="text" id="scramble" placeholder="R U R' U' F R F'" style="width: 300px;">
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>
    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const scramble = document.getElementById('scramble').value;
            const response = await fetch('/api/solve', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ scramble })
            });
            const result = await response.json();
            document.getElementById('result').textContent = result.solution || result.error;
            document.getElementById('result').style.display = 'block';
        });
    </script>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.MaxDepth == 0 {
		req.MaxDepth = 20
	}

	moves, err := notation.ParseScramble(req.Scramble)
	if err != nil {
		http.Error(w, fmt.Sprintf("parsing scramble: %v", err), http.StatusBadRequest)
		return
	}

	scrambled := cube.Solved.ApplyAll(moves)
	solution := search.Solve(scrambled, req.MaxDepth, s.h)
	if solution == nil {
		http.Error(w, fmt.Sprintf("no solution within %d moves", req.MaxDepth), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(solveResponse{
		Solution: notation.Format(solution),
		Moves:    len(solution),
	})
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	var req showRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	c := cube.Solved
	if req.Scramble != "" {
		moves, err := notation.ParseScramble(req.Scramble)
		if err != nil {
			http.Error(w, fmt.Sprintf("parsing scramble: %v", err), http.StatusBadRequest)
			return
		}
		c = c.ApplyAll(moves)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(showResponse{Net: render.Net(c)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
