package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"pet-shelter/internal/adapters/notify"
	"pet-shelter/internal/domain/parents"
	"pet-shelter/internal/platform/config"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/router"
)

type sentMessage struct {
	UserName string
	Text     string
}

// recordingGateway guarda lo que se habría enviado por Telegram.
type recordingGateway struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (g *recordingGateway) Send(ctx context.Context, userName, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentMessage{userName, text})
	return nil
}

func (g *recordingGateway) messages() []sentMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]sentMessage(nil), g.sent...)
}

func newTestServer(t *testing.T) (*httptest.Server, *recordingGateway) {
	t.Helper()
	gw := &recordingGateway{}
	log := logger.Nop()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Logger:   log,
		Notifier: notify.NewInline(gw, log, 0),
	}))
	t.Cleanup(ts.Close)
	return ts, gw
}

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts, gw := newTestServer(t)

	// 1) Refugio de gatos
	shelterID := createWithID(t, ts.URL, "/shelters", map[string]any{
		"name":     "North",
		"address":  "Calle 1",
		"pet_type": "CAT",
	})

	// 2) Gato en ese refugio
	animalID := createWithID(t, ts.URL, "/animals", map[string]any{
		"kind":       "cat",
		"name":       "Milo",
		"age":        2,
		"shelter_id": shelterID,
	})

	// 3) Un perro no entra en un refugio de gatos
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{
			"kind": "dog", "name": "Rex", "shelter_id": shelterID,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 dog in cat shelter, got %d body=%s", st, string(body))
		}
	}

	// 4) Adoptante
	{
		st, body := doReq(t, ts.URL, "POST", "/parents", map[string]any{
			"chat_id":   "tg:1001",
			"user_name": "ana",
			"name":      "Ana",
			"age":       30,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create parent, got %d body=%s", st, string(body))
		}
	}

	// 5) Asignar el gato => período de prueba
	{
		st, body := doReq(t, ts.URL, "PUT", "/parents/tg:1001/animal", map[string]any{"animal_id": animalID})
		if st != http.StatusOK {
			t.Fatalf("expected 200 add animal, got %d body=%s", st, string(body))
		}
		p := decodeParent(t, body)
		if p.AnimalID == nil || *p.AnimalID != animalID || p.Probation != "on_probation" {
			t.Fatalf("unexpected parent after add animal: %+v", p)
		}
	}

	// 6) Fecha de reporte: avanza, no retrocede
	{
		st, body := doReq(t, ts.URL, "PUT", "/parents/tg:1001/report-date", map[string]any{"date": "2026-01-10"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 report date, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "PUT", "/parents/tg:1001/report-date", map[string]any{"date": "2026-01-09"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 earlier report date, got %d body=%s", st, string(body))
		}
	}

	// 7) Update de datos personales no toca la adopción
	{
		st, body := doReq(t, ts.URL, "PUT", "/parents/tg:1001", map[string]any{
			"name":        "Ana María",
			"age":         31,
			"animal_id":   999,
			"report_date": "2030-01-01",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update parent, got %d body=%s", st, string(body))
		}
		p := decodeParent(t, body)
		if p.Name != "Ana María" || p.Age != 31 {
			t.Fatalf("personal data not updated: %+v", p)
		}
		if p.AnimalID == nil || *p.AnimalID != animalID || p.ReportDate == nil || *p.ReportDate != "2026-01-10" {
			t.Fatalf("adoption state changed on update: %+v", p)
		}
	}

	// 8) El animal asignado no se puede borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/animals/"+itoa(animalID), nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 delete assigned animal, got %d", st)
		}
	}

	// 9) Felicitación directa: un solo envío, sin cambios de estado
	{
		st, body := doReq(t, ts.URL, "POST", "/messages/congratulations", map[string]any{"user_name": "ana"})
		if st != http.StatusAccepted {
			t.Fatalf("expected 202 congratulations, got %d body=%s", st, string(body))
		}
		msgs := gw.messages()
		if len(msgs) != 1 || msgs[0].UserName != "ana" || msgs[0].Text != parents.MessageCongratulations {
			t.Fatalf("expected exactly one congratulation to ana, got %+v", msgs)
		}

		_, body = doReq(t, ts.URL, "GET", "/parents/tg:1001", nil)
		if p := decodeParent(t, body); p.Probation != "on_probation" {
			t.Fatalf("congratulation must not change state: %+v", p)
		}
	}

	// 10) Cerrar el período de prueba registra el resultado y notifica
	{
		st, body := doReq(t, ts.URL, "POST", "/parents/tg:1001/probation/complete", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 complete probation, got %d body=%s", st, string(body))
		}
		if p := decodeParent(t, body); p.Probation != "graduated" || p.ReportDate != nil {
			t.Fatalf("unexpected parent after complete: %+v", p)
		}
		if msgs := gw.messages(); len(msgs) != 2 {
			t.Fatalf("expected 2 messages after complete, got %+v", msgs)
		}
	}

	// 11) Refugio con animales no se borra
	{
		st, body := doReq(t, ts.URL, "DELETE", "/shelters/"+itoa(shelterID), nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 delete shelter with animals, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_Parents_DeleteIsIdempotent(t *testing.T) {
	ts, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "DELETE", "/parents/tg:404", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete parent, got %d body=%s", st, string(body))
		}
		var resp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Message != parents.DeletedMessage {
			t.Fatalf("unexpected delete message: %s", string(body))
		}
	}
}

func TestHTTP_NotFoundAndValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	if st, _ := doReq(t, ts.URL, "GET", "/animals/42", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown animal, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/animals/abc", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad animal id, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/shelters", map[string]any{"name": "X", "pet_type": "BIRD"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown pet type, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/volunteers", map[string]any{"chat_id": "tg:7", "name": "Vero", "extra": 1}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown field, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "PUT", "/parents/tg:404/animal", map[string]any{"animal_id": 1}); st != http.StatusNotFound {
		t.Fatalf("expected 404 add animal to unknown parent, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/parents/due-reports?date=10-01-2026", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad date, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/health", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func TestHTTP_Reminders(t *testing.T) {
	ts, gw := newTestServer(t)

	shelterID := createWithID(t, ts.URL, "/shelters", map[string]any{"name": "South", "pet_type": "DOG"})
	animalID := createWithID(t, ts.URL, "/animals", map[string]any{"kind": "dog", "name": "Rex", "shelter_id": shelterID})

	doReq(t, ts.URL, "POST", "/parents", map[string]any{"chat_id": "tg:2", "user_name": "beto"})
	doReq(t, ts.URL, "PUT", "/parents/tg:2/animal", map[string]any{"animal_id": animalID})
	doReq(t, ts.URL, "PUT", "/parents/tg:2/report-date", map[string]any{"date": "2026-02-01"})

	st, body := doReq(t, ts.URL, "POST", "/parents/reminders?date=2026-02-01", nil)
	if st != http.StatusAccepted {
		t.Fatalf("expected 202 reminders, got %d body=%s", st, string(body))
	}
	var resp struct {
		Date string `json:"date"`
		Sent int    `json:"sent"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Sent != 1 || resp.Date != "2026-02-01" {
		t.Fatalf("unexpected reminders response: %s", string(body))
	}
	if msgs := gw.messages(); len(msgs) != 1 || msgs[0].Text != parents.MessageReportReminder {
		t.Fatalf("expected one reminder, got %+v", msgs)
	}
}

type parentBody struct {
	ChatID     string  `json:"chat_id"`
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	AnimalID   *int64  `json:"animal_id"`
	ReportDate *string `json:"report_date"`
	Probation  string  `json:"probation"`
}

func decodeParent(t *testing.T, body []byte) parentBody {
	t.Helper()
	var p parentBody
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode parent: %v body=%s", err, string(body))
	}
	return p
}

func createWithID(t *testing.T, baseURL, path string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func TestNewGateway_WithoutTokenOnlyLogs(t *testing.T) {
	gw, err := router.NewGateway(config.Config{}, logger.Nop(), nil)
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}
	if _, ok := gw.(*notify.LogGateway); !ok {
		t.Fatalf("expected *notify.LogGateway, got %T", gw)
	}
}
