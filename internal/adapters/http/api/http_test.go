package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Rohannaa2m12/hackapp/internal/adapters/http/api"
	"github.com/Rohannaa2m12/hackapp/internal/app"
	"github.com/Rohannaa2m12/hackapp/internal/domain/model"
	"github.com/Rohannaa2m12/hackapp/internal/engine"
)

type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *steppingClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestServer(t *testing.T) (*httptest.Server, *app.Service, *steppingClock) {
	t.Helper()
	clock := &steppingClock{now: time.Unix(1_700_000_000, 0)}
	svc := app.New(
		app.WithClock(clock),
		app.WithClaimsPerMin(6_000_000),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(api.NewServer(svc).Router())
	t.Cleanup(func() {
		ts.Close()
		svc.Stop()
	})
	return ts, svc, clock
}

func postJSON(t *testing.T, url string, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return resp, decodeBody(t, resp)
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func registerOne(t *testing.T, baseURL, owner string) int64 {
	t.Helper()
	body := fmt.Sprintf(`{"owner":%q,"payload":"p","category":"keyboard","fee_wei":%d}`, owner, int64(engine.DefaultMinFeeWei))
	resp, doc := postJSON(t, baseURL+"/gadgets", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d: %v", resp.StatusCode, doc)
	}
	return int64(doc["gadget_id"].(float64))
}

func TestRegisterEndpoint(t *testing.T) {
	Convey("Given the registry API", t, func() {
		ts, _, _ := newTestServer(t)
		Convey("When registering a valid gadget", func() {
			body := fmt.Sprintf(`{"owner":"alice","payload":"open palette","category":"keyboard","fee_wei":%d}`, int64(engine.DefaultMinFeeWei))
			resp, doc := postJSON(t, ts.URL+"/gadgets", body)

			Convey("Then it responds 201 with the gadget", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusCreated)
				So(doc["owner"], ShouldEqual, "alice")
				So(doc["active"], ShouldEqual, true)
				So(doc["gadget_hash"], ShouldNotBeEmpty)
			})
		})

		Convey("When the fee is too low", func() {
			resp, doc := postJSON(t, ts.URL+"/gadgets", `{"owner":"alice","payload":"p","category":"keyboard","fee_wei":1}`)

			Convey("Then it responds 402 with the fee code", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusPaymentRequired)
				So(doc["code"], ShouldEqual, "fee_required")
			})
		})

		Convey("When the category is unknown", func() {
			resp, doc := postJSON(t, ts.URL+"/gadgets", fmt.Sprintf(`{"owner":"alice","payload":"p","category":"bogus","fee_wei":%d}`, int64(engine.DefaultMinFeeWei)))

			Convey("Then it responds 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				So(doc["code"], ShouldEqual, "bad_request")
			})
		})

		Convey("When the body is not JSON", func() {
			resp, doc := postJSON(t, ts.URL+"/gadgets", "{not json")

			Convey("Then it responds 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				So(doc["code"], ShouldEqual, "bad_request")
			})
		})
	})
}

func TestClaimEndpoints(t *testing.T) {
	Convey("Given a registered gadget", t, func() {
		ts, _, clock := newTestServer(t)
		id := registerOne(t, ts.URL, "alice")

		Convey("When bob claims it", func() {
			resp, doc := postJSON(t, fmt.Sprintf("%s/gadgets/%d/claims", ts.URL, id), `{"claimer":"bob"}`)

			Convey("Then it responds 201 with the shortcut", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusCreated)
				So(doc["claimer"], ShouldEqual, "bob")
				So(doc["score_added"], ShouldBeGreaterThanOrEqualTo, 10)
			})

			Convey("And an immediate second claim hits the cooldown", func() {
				resp2, doc2 := postJSON(t, fmt.Sprintf("%s/gadgets/%d/claims", ts.URL, id), `{"claimer":"bob"}`)
				So(resp2.StatusCode, ShouldEqual, http.StatusTooManyRequests)
				So(doc2["code"], ShouldEqual, "claim_too_soon")

				Convey("But passes once the cooldown elapses", func() {
					clock.Advance(2 * time.Minute)
					resp3, _ := postJSON(t, fmt.Sprintf("%s/gadgets/%d/claims", ts.URL, id), `{"claimer":"bob"}`)
					So(resp3.StatusCode, ShouldEqual, http.StatusCreated)
				})
			})

			Convey("And the claims counter reflects it", func() {
				resp2, doc2 := getJSON(t, fmt.Sprintf("%s/gadgets/%d/claims", ts.URL, id))
				So(resp2.StatusCode, ShouldEqual, http.StatusOK)
				So(doc2["claims"], ShouldEqual, 1)
			})
		})

		Convey("When claiming a gadget that does not exist", func() {
			resp, doc := postJSON(t, ts.URL+"/gadgets/99999/claims", `{"claimer":"bob"}`)

			Convey("Then it responds 404", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
				So(doc["code"], ShouldEqual, "invalid_gadget_id")
			})
		})
	})
}

func TestToggleEndpoint(t *testing.T) {
	Convey("Given a registered gadget", t, func() {
		ts, _, _ := newTestServer(t)
		id := registerOne(t, ts.URL, "alice")

		Convey("When the owner disables it", func() {
			req, err := http.NewRequest(http.MethodPatch,
				fmt.Sprintf("%s/gadgets/%d/active", ts.URL, id),
				bytes.NewBufferString(`{"owner":"alice","active":false}`))
			So(err, ShouldBeNil)
			req.Header.Set("Content-Type", "application/json")
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			doc := decodeBody(t, resp)

			Convey("Then the gadget reports inactive", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(doc["active"], ShouldEqual, false)
			})

			Convey("And a claim on it now conflicts", func() {
				resp2, doc2 := postJSON(t, fmt.Sprintf("%s/gadgets/%d/claims", ts.URL, id), `{"claimer":"bob"}`)
				So(resp2.StatusCode, ShouldEqual, http.StatusConflict)
				So(doc2["code"], ShouldEqual, "gadget_inactive")
			})
		})

		Convey("When a non-owner tries to toggle", func() {
			req, err := http.NewRequest(http.MethodPatch,
				fmt.Sprintf("%s/gadgets/%d/active", ts.URL, id),
				bytes.NewBufferString(`{"owner":"mallory","active":false}`))
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			doc := decodeBody(t, resp)

			Convey("Then it responds 403", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusForbidden)
				So(doc["code"], ShouldEqual, "not_operator")
			})
		})
	})
}

func TestBatchEndpoint(t *testing.T) {
	Convey("Given a batch with one failing item", t, func() {
		ts, _, _ := newTestServer(t)
		body := fmt.Sprintf(`{"items":[
			{"owner":"alice","payload":"a","category":"keyboard","fee_wei":%d},
			{"owner":"bob","payload":"b","category":"snippet","fee_wei":1}
		]}`, int64(engine.DefaultMinFeeWei))

		Convey("When posted to the batch endpoint", func() {
			resp, doc := postJSON(t, ts.URL+"/gadgets/batch", body)

			Convey("Then it responds 200 with per-item outcomes", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(doc["registered"], ShouldEqual, 1)
				outcomes := doc["outcomes"].([]any)
				So(len(outcomes), ShouldEqual, 2)
				first := outcomes[0].(map[string]any)
				So(first["gadget"], ShouldNotBeNil)
				second := outcomes[1].(map[string]any)
				So(second["error"], ShouldContainSubstring, "fee")
			})
		})
	})
}

func TestQueryEndpoints(t *testing.T) {
	Convey("Given some registry activity", t, func() {
		ts, _, _ := newTestServer(t)
		id := registerOne(t, ts.URL, "alice")
		resp, _ := postJSON(t, fmt.Sprintf("%s/gadgets/%d/claims", ts.URL, id), `{"claimer":"bob"}`)
		So(resp.StatusCode, ShouldEqual, http.StatusCreated)

		Convey("When fetching the gadget", func() {
			resp, doc := getJSON(t, fmt.Sprintf("%s/gadgets/%d", ts.URL, id))
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(doc["claim_count"], ShouldEqual, 1)
		})

		Convey("When fetching a missing gadget", func() {
			resp, doc := getJSON(t, ts.URL+"/gadgets/424242")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			So(doc["code"], ShouldEqual, "invalid_gadget_id")
		})

		Convey("When the id is not a number", func() {
			resp, doc := getJSON(t, ts.URL+"/gadgets/abc")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(doc["code"], ShouldEqual, "bad_request")
		})

		Convey("When fetching user stats", func() {
			resp, doc := getJSON(t, ts.URL+"/users/bob/stats")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(doc["shortcuts"], ShouldEqual, 1)
			So(doc["tier"], ShouldEqual, "BRONZE")
		})

		Convey("When fetching the leaderboard", func() {
			resp, doc := getJSON(t, ts.URL+"/leaderboard?limit=5")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			entries := doc["entries"].([]any)
			So(len(entries), ShouldEqual, 2)
			first := entries[0].(map[string]any)
			So(first["user"], ShouldEqual, "bob")
			So(first["rank"], ShouldEqual, 1)
		})

		Convey("When the leaderboard limit is invalid", func() {
			resp, doc := getJSON(t, ts.URL+"/leaderboard?limit=zero")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(doc["code"], ShouldEqual, "bad_request")
		})

		Convey("When fetching categories", func() {
			resp, doc := getJSON(t, ts.URL+"/categories")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(len(doc["categories"].([]any)), ShouldEqual, len(model.Categories()))
		})

		Convey("When fetching global stats", func() {
			resp, doc := getJSON(t, ts.URL+"/stats")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(doc["total_gadgets"], ShouldEqual, 1)
			So(doc["total_shortcuts"], ShouldEqual, 1)
		})

		Convey("When checking health", func() {
			resp, doc := getJSON(t, ts.URL+"/healthz")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(doc["status"], ShouldEqual, "ok")
		})
	})
}

func TestExportImportEndpoints(t *testing.T) {
	Convey("Given a couple of gadgets", t, func() {
		ts, _, _ := newTestServer(t)
		registerOne(t, ts.URL, "alice")
		registerOne(t, ts.URL, "bob")

		Convey("When exporting as JSON", func() {
			resp, err := http.Get(ts.URL + "/gadgets/export")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the document carries the export envelope", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "application/json")
				var doc map[string]any
				So(json.NewDecoder(resp.Body).Decode(&doc), ShouldBeNil)
				So(doc["version"], ShouldEqual, 2)
				So(len(doc["gadgets"].([]any)), ShouldEqual, 2)
			})
		})

		Convey("When exporting as CSV", func() {
			resp, err := http.Get(ts.URL + "/gadgets/export?format=csv")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the payload is CSV with the header row", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "text/csv")
				var buf bytes.Buffer
				_, err := buf.ReadFrom(resp.Body)
				So(err, ShouldBeNil)
				So(buf.String(), ShouldStartWith, "gadget_id,owner")
			})
		})

		Convey("When the export format is unknown", func() {
			resp, doc := getJSON(t, ts.URL+"/gadgets/export?format=xml")
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			So(doc["code"], ShouldEqual, "bad_request")
		})

		Convey("When importing a minimal document", func() {
			doc := `{"gadgets":[{"owner":"carol","gadget_hash":"h","category":"macro"},{"owner":"dave","gadget_hash":"x","category":"nope"}]}`
			resp, out := postJSON(t, ts.URL+"/gadgets/import", doc)

			Convey("Then good entries import and bad ones are skipped", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(out["imported"], ShouldEqual, 1)
				So(out["skipped"], ShouldEqual, 1)
			})
		})

		Convey("When exporting shortcuts", func() {
			resp, doc := getJSON(t, ts.URL+"/shortcuts/export")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(doc["version"], ShouldEqual, 2)
		})
	})
}
