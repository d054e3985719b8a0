package worker

import (
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// asynqRedisOpt übernimmt Adresse, Passwort und DB des go-redis Clients aus cmd.
func asynqRedisOpt(redis *redis.Client) asynq.RedisClientOpt {
	opts := redis.Options()
	return asynq.RedisClientOpt{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	}
}
