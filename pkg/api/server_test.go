package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consilium-ai/consilium/pkg/database"
	"github.com/consilium-ai/consilium/pkg/llm"
	"github.com/consilium-ai/consilium/pkg/models"
	"github.com/consilium-ai/consilium/pkg/protocol"
	_ "github.com/consilium-ai/consilium/pkg/protocol/protocols" // register protocol keys
	"github.com/consilium-ai/consilium/pkg/runner"
	"github.com/consilium-ai/consilium/pkg/services"
	"github.com/consilium-ai/consilium/test/util"
)

const testAPIKey = "test-secret"

// stubCaller answers every gateway call with a fixed text.
type stubCaller struct {
	text string
}

func (s *stubCaller) Call(ctx context.Context, _ llm.CallRequest) (*llm.CallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &llm.CallResult{Text: s.text, Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 5}}, nil
}

type testServer struct {
	router *gin.Engine
	runs   *services.RunService
}

func newTestServer(t *testing.T, caller protocol.Caller) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, db := util.SetupTestDatabase(t)
	dbClient := database.NewClientFromEnt(client, db)

	agents := services.NewAgentService(client)
	teams := services.NewTeamService(client, agents)
	pipelines := services.NewPipelineService(client)
	runs := services.NewRunService(client)
	controller := runner.New(runs, agents, pipelines, caller, runner.Config{
		ThinkingModel:      "claude-sonnet-4-5",
		OrchestrationModel: "claude-haiku-4-5",
	})

	srv := NewServer(dbClient, agents, teams, pipelines, runs, controller, Config{APIKey: testAPIKey})
	return &testServer{router: srv.Router(), runs: runs}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func TestAPIKeyIsRequired(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/api/agents", nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/agents", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/agents", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthIsUnauthenticated(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
}

func TestAgentEndpoints(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})

	rec := ts.do(t, http.MethodPost, "/api/agents", models.CreateAgentRequest{
		Key:          "fp-a-advisor",
		DisplayName:  "FP&A Advisor",
		SystemPrompt: "You model scenarios and sensitivities.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/agents/fp-a-advisor", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view models.AgentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "FP&A Advisor", view.DisplayName)
	assert.False(t, view.Builtin)

	// Built-in agents reject writes.
	name := "Impostor"
	rec = ts.do(t, http.MethodPut, "/api/agents/cfo", models.UpdateAgentRequest{DisplayName: &name})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/agents/fp-a-advisor", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/agents/fp-a-advisor", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProtocolCatalogEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})

	rec := ts.do(t, http.MethodGet, "/api/protocols", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []models.ProtocolView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.GreaterOrEqual(t, len(views), 21)

	byKey := make(map[string]models.ProtocolView, len(views))
	for _, v := range views {
		byKey[v.Key] = v
	}
	assert.True(t, byKey["parallel-synthesis"].ToolsEnabled)
	assert.False(t, byKey["meta-advisor"].ToolsEnabled)
	assert.True(t, byKey["debate"].SupportsRounds)
}

func TestPipelineEndpoints(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})

	rec := ts.do(t, http.MethodPost, "/api/pipelines", models.CreatePipelineRequest{
		Name: "diligence",
		Steps: []models.PipelineStepSpec{
			{ProtocolKey: "swot", QuestionTemplate: "{question}", OutputPassthrough: true},
			{ProtocolKey: "falsification", QuestionTemplate: "{prev_output}"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = ts.do(t, http.MethodGet, "/api/pipelines/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"swot"`)

	rec = ts.do(t, http.MethodPost, "/api/pipelines", models.CreatePipelineRequest{
		Name: "bad",
		Steps: []models.PipelineStepSpec{
			{ProtocolKey: "no-such-protocol", QuestionTemplate: "{question}"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/pipelines/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTeamEndpoints(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})

	rec := ts.do(t, http.MethodPost, "/api/teams", models.CreateTeamRequest{
		Name:            "executive-board",
		AgentKeys:       []string{"cfo", "cto"},
		DefaultProtocol: "debate",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/teams", models.CreateTeamRequest{
		Name:      "ghosts",
		AgentKeys: []string{"nobody"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunListAndDetailEndpoints(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})
	ctx := context.Background()

	r, err := ts.runs.CreateProtocolRun(ctx, models.StartProtocolRunRequest{
		Question:    "q",
		ProtocolKey: "debate",
	}, []string{"cfo", "cto"})
	require.NoError(t, err)

	rec := ts.do(t, http.MethodGet, "/api/runs?status=pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.RunListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.TotalCount)

	rec = ts.do(t, http.MethodGet, "/api/runs/"+r.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/runs/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/runs/"+r.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelled"`)
}

func TestStartProtocolRunStreamsSSE(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "Reframed: which market first?"})

	rec := ts.do(t, http.MethodPost, "/api/runs/protocol", models.StartProtocolRunRequest{
		Question:    "Where should we expand?",
		ProtocolKey: "meta-framer",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event:run_start")
	assert.Contains(t, body, "event:synthesis")
	assert.Contains(t, body, "event:run_complete")
	assert.Contains(t, body, `"status":"completed"`)

	list, err := ts.runs.List(context.Background(), models.RunFilters{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalCount)
}

func TestStartProtocolRunRejectsUnknownProtocol(t *testing.T) {
	ts := newTestServer(t, &stubCaller{text: "ok"})

	rec := ts.do(t, http.MethodPost, "/api/runs/protocol", models.StartProtocolRunRequest{
		Question:    "q",
		ProtocolKey: "no-such-protocol",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
