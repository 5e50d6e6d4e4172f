package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v3"
)

// completedTrade is the POST /trades/completed payload
type completedTrade struct {
	UserID    string  `json:"userId"`
	PartnerID string  `json:"partnerId"`
	Type      string  `json:"type"`
	Item      string  `json:"item"`
	Rating    float64 `json:"rating"`
}

// result contains metrics for a single request
type result struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Err          string
}

// stats contains aggregated test statistics
type stats struct {
	mu            sync.Mutex
	Total         int
	Successful    int
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	PairCounts    map[string]int
	RatingCounts  map[int]int
}

func main() {
	cmd := &cli.Command{
		Name:  "load-test",
		Usage: "Drive POST /trades/completed with random rated trades",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "concurrency", Aliases: []string{"c"}, Value: 5},
			&cli.IntFlag{Name: "requests", Aliases: []string{"n"}, Value: 100},
			&cli.StringFlag{Name: "users", Aliases: []string{"u"}, Value: "alice,bob,carol,dave", Usage: "comma-separated user IDs"},
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080"},
			&cli.IntFlag{Name: "delay", Value: 100, Usage: "delay before each request in milliseconds"},
		},
		Action: runLoadTest,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runLoadTest(ctx context.Context, c *cli.Command) error {
	var users []string
	for _, id := range strings.Split(c.String("users"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			users = append(users, id)
		}
	}
	if len(users) < 2 {
		return fmt.Errorf("need at least two users to form trade pairs, got %d", len(users))
	}

	total := int(c.Int("requests"))
	concurrency := int(c.Int("concurrency"))
	delay := time.Duration(c.Int("delay")) * time.Millisecond
	endpoint := strings.TrimRight(c.String("url"), "/") + "/trades/completed"

	fmt.Printf("Load testing %s across %d users: %v\n", endpoint, len(users), users)
	fmt.Printf("Concurrency: %d, requests: %d, delay: %v\n", concurrency, total, delay)

	s := &stats{
		Total:         total,
		ResponseTimes: make([]time.Duration, 0, total),
		StatusCounts:  map[int]int{},
		ErrorCounts:   map[string]int{},
		PairCounts:    map[string]int{},
		RatingCounts:  map[int]int{},
	}
	client := &http.Client{Timeout: 10 * time.Second}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Printf("Progress: %d/%d\n", s.Successful+s.Failed, s.Total)
				s.mu.Unlock()
			}
		}
	}()

	start := time.Now()
	p := pool.New().WithMaxGoroutines(concurrency).WithContext(ctx)
	for i := 0; i < total; i++ {
		p.Go(func(ctx context.Context) error {
			if delay > 0 {
				time.Sleep(delay)
			}
			trade := randomTrade(users, i)
			s.record(trade, send(ctx, client, endpoint, trade))
			return nil
		})
	}
	_ = p.Wait()
	close(done)
	s.TotalTime = time.Since(start)

	s.print()
	return nil
}

func randomTrade(users []string, seq int) completedTrade {
	i := rand.Intn(len(users))
	j := rand.Intn(len(users) - 1)
	if j >= i {
		j++
	}
	tradeType := "give"
	if rand.Intn(2) == 1 {
		tradeType = "receive"
	}
	return completedTrade{
		UserID:    users[i],
		PartnerID: users[j],
		Type:      tradeType,
		Item:      fmt.Sprintf("load-test item %d", seq),
		Rating:    float64(1 + rand.Intn(5)),
	}
}

func send(ctx context.Context, client *http.Client, endpoint string, trade completedTrade) result {
	body, err := json.Marshal(trade)
	if err != nil {
		return result{Err: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return result{Err: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	res := result{ResponseTime: time.Since(start)}
	if err != nil {
		res.Err = err.Error()
		return res
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	res.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !res.Success {
		res.Err = fmt.Sprintf("HTTP status code %d", resp.StatusCode)
	}
	return res
}

func (s *stats) record(trade completedTrade, res result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair := []string{trade.UserID, trade.PartnerID}
	slices.Sort(pair)
	s.PairCounts[strings.Join(pair, "<->")]++
	s.RatingCounts[int(trade.Rating)]++
	s.StatusCounts[res.StatusCode]++

	if res.Success {
		s.Successful++
	} else {
		s.Failed++
		s.ErrorCounts[res.Err]++
	}
	if res.ResponseTime > 0 {
		s.ResponseTimes = append(s.ResponseTimes, res.ResponseTime)
	}
}

func (s *stats) print() {
	sorted := slices.Clone(s.ResponseTimes)
	slices.Sort(sorted)
	percentile := func(p int) time.Duration {
		if len(sorted) == 0 {
			return 0
		}
		return sorted[len(sorted)*p/100]
	}
	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", s.Total)
	fmt.Printf("Successful Requests: %d\n", s.Successful)
	fmt.Printf("Failed Requests:     %d\n", s.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", s.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f scored trades/s\n", float64(s.Successful)/s.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v  P50: %v  P90: %v  P99: %v\n", avg, percentile(50), percentile(90), percentile(99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range s.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- PAIR DISTRIBUTION -----------------")
	for pair, count := range s.PairCounts {
		fmt.Printf("%-24s %d\n", pair, count)
	}

	fmt.Println("\n----------------- RATING DISTRIBUTION -----------------")
	for rating := 1; rating <= 5; rating++ {
		fmt.Printf("%d: %d\n", rating, s.RatingCounts[rating])
	}

	if s.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range s.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
