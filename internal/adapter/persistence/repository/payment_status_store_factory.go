package repository

import (
	"context"
	"log"

	"checkout_verifier/internal/infrastructure/config"
	"checkout_verifier/internal/infrastructure/database"
	"checkout_verifier/internal/usecase/interfaces"
)

// NewPaymentStatusStore builds the status store selected by cfg.Backend and
// wraps it with the in-memory fallback. The returned name is the backend
// actually serving as primary ("memory" when none could be built).
//
// With the auto backend the KV service wins when configured, then DynamoDB
// when an endpoint is set.
func NewPaymentStatusStore(ctx context.Context, cfg config.StoreConfig) (interfaces.IPaymentStatusStore, string) {
	memory := NewPaymentStatusMemoryRepository()

	primary, name := primaryStore(ctx, cfg)
	if primary == nil {
		log.Printf("[store] using process-local memory store; records are not shared and do not survive restarts")
		return NewPaymentStatusFallbackRepository(config.StoreBackendMemory, nil, memory, cfg.Timeout), config.StoreBackendMemory
	}

	log.Printf("[store] using %s store with memory fallback", name)
	return NewPaymentStatusFallbackRepository(name, primary, memory, cfg.Timeout), name
}

func primaryStore(ctx context.Context, cfg config.StoreConfig) (interfaces.IPaymentStatusStore, string) {
	switch cfg.Backend {
	case config.StoreBackendMemory:
		return nil, ""
	case config.StoreBackendKV:
		return kvStore(cfg)
	case config.StoreBackendDynamoDB:
		return dynamoStore(ctx, cfg)
	default:
		if cfg.KVURL != "" && cfg.KVToken != "" {
			return kvStore(cfg)
		}
		if cfg.Endpoint != "" {
			return dynamoStore(ctx, cfg)
		}
		return nil, ""
	}
}

func kvStore(cfg config.StoreConfig) (interfaces.IPaymentStatusStore, string) {
	kv, err := NewPaymentStatusKVRepository(cfg.KVURL, cfg.KVToken, cfg.Timeout)
	if err != nil {
		log.Printf("[store][kv] disabled err=%v", err)
		return nil, ""
	}
	return kv, config.StoreBackendKV
}

func dynamoStore(ctx context.Context, cfg config.StoreConfig) (interfaces.IPaymentStatusStore, string) {
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{Region: cfg.Region, Endpoint: cfg.Endpoint})
	if err != nil {
		log.Printf("[store][dynamodb] disabled err=%v", err)
		return nil, ""
	}
	return NewPaymentStatusDynamoRepository(ddb, cfg.Table), config.StoreBackendDynamoDB
}
