package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// ImageProvider turns a prompt into raw image bytes. Which implementation
// runs is decided once at startup by configuration.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string, width, height, seed int) ([]byte, error)
}

var imageClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		DialContext:  (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		MaxIdleConns: 10,
	},
}

const hfModelURL = "https://router.huggingface.co/hf-inference/models/black-forest-labs/FLUX.1-schnell"

// HFProvider calls a Hugging Face inference model directly. Needs a bearer
// token.
type HFProvider struct {
	Token string
}

func (p *HFProvider) GenerateImage(ctx context.Context, prompt string, width, height, seed int) ([]byte, error) {
	body, err := json.Marshal(map[string]any{
		"inputs": prompt,
		"parameters": map[string]int{
			"width":  width,
			"height": height,
			"seed":   seed,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hfModelURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: hf status %d", errProviderFailure, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// PollinationsProvider uses the public templated-URL endpoint. No credential.
type PollinationsProvider struct{}

func (PollinationsProvider) GenerateImage(ctx context.Context, prompt string, width, height, seed int) ([]byte, error) {
	u := fmt.Sprintf(
		"https://image.pollinations.ai/prompt/%s?width=%d&height=%d&seed=%d&nologo=true",
		url.PathEscape(prompt), width, height, seed,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: pollinations status %d", errProviderFailure, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
