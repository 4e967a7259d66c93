package rng

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"
)

// ProvablyFair derives draws from HMAC-SHA256(serverSeed, clientSeed:nonce).
// The server seed is committed to up front via Commitment; revealing it after
// play lets the player re-derive every draw. The nonce advances once per
// draw, so a round consumes one nonce per Float64/IntInRange call.
type ProvablyFair struct {
	mu         sync.Mutex
	serverSeed string
	clientSeed string
	nonce      uint64
}

func NewProvablyFair(serverSeed, clientSeed string) *ProvablyFair {
	return &ProvablyFair{
		serverSeed: serverSeed,
		clientSeed: clientSeed,
	}
}

// NewServerSeed returns 32 bytes of fresh entropy, hex encoded.
func NewServerSeed() (string, error) {
	buf := make([]byte, 32)
	_, err := rand.Read(buf)
	if err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Commitment is the sha256 of the server seed, shown to the player before
// any draw is made.
func (p *ProvablyFair) Commitment() string {
	sum := sha256.Sum256([]byte(p.serverSeed))
	return hex.EncodeToString(sum[:])
}

// Nonce reports how many draws have been consumed so far.
func (p *ProvablyFair) Nonce() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.nonce
}

func (p *ProvablyFair) Float64() float64 {
	return p.next()
}

func (p *ProvablyFair) IntInRange(lo, hi int) int {
	return lo + int(p.next()*float64(hi-lo+1))
}

// next derives the current draw and advances the nonce.
func (p *ProvablyFair) next() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := hmac.New(sha256.New, []byte(p.serverSeed))
	fmt.Fprintf(h, "%s:%d", p.clientSeed, p.nonce)
	p.nonce++

	sum := h.Sum(nil)

	// 52 bits keep the full float64 mantissa precision.
	v := binary.BigEndian.Uint64(sum[:8]) >> 12

	return float64(v) / (1 << 52)
}
