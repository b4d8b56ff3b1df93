package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8080"
	rps        = 5
	duration   = 3 * time.Minute
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	seededUsers int
	httpc       = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: registering users...")

	for i := 1; i <= 100; i++ {
		signup := SignupRequest{
			Username: fmt.Sprintf("loaduser-%03d", i),
			Email:    fmt.Sprintf("loaduser-%03d@mail.com", i),
			Password: "P4ssword",
		}

		status, err := postJSON(targetHost+"/api/1.0/users", signup)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN users returned %d\n", status)
		}

		seededUsers++
		time.Sleep(20 * time.Millisecond)
	}

	log.Printf("Seed completed: users=%d\n", seededUsers)
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 60% GET users (страницы списка)
		if r < 0.60 {
			page := rand.Intn(seededUsers/10 + 1)
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/api/1.0/users?page=%d", targetHost, page)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 35% GET users/:id
		if r < 0.95 {
			id := rand.Intn(seededUsers) + 1
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/api/1.0/users/%d", targetHost, id)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 5% POST users (регистрация с уникальным email)
		suffix := time.Now().UnixNano()
		body, _ := json.Marshal(SignupRequest{
			Username: fmt.Sprintf("load-%d", suffix),
			Email:    fmt.Sprintf("load-%d@mail.com", suffix),
			Password: "P4ssword",
		})
		t.Method = http.MethodPost
		t.URL = targetHost + "/api/1.0/users"
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
