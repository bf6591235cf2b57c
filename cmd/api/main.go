package main

import (
	"context"

	"Community_API/internal/config"
	"Community_API/internal/handler"
	"Community_API/internal/pkg"
	"Community_API/internal/repository"
	redisrepo "Community_API/internal/repository/redis"
	"Community_API/internal/repository/surreal"
	"Community_API/internal/router"
	"Community_API/internal/service"
)

func main() {
	log := pkg.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	db, err := surreal.Connect(ctx, surreal.Config{
		URL:       cfg.SurrealURL,
		Namespace: cfg.SurrealNS,
		Database:  cfg.SurrealDB,
		Username:  cfg.SurrealUser,
		Password:  cfg.SurrealPass,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect surrealdb")
	}
	defer db.Close(ctx)

	// 声明唯一索引（开发阶段 OK）
	if err := surreal.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	ids, err := pkg.NewIDGenerator(cfg.SnowflakeNode)
	if err != nil {
		log.Fatal().Err(err).Msg("init snowflake node")
	}
	maker := pkg.NewTokenMaker(cfg.JWTSecret, cfg.JWTTTL)

	// 摘要缓存可选，没配 redis 就直查库
	var cache repository.SummaryCache
	if cfg.RedisAddr != "" {
		client, err := redisrepo.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer client.Close()
		cache = redisrepo.NewSummaryCache(client, cfg.SummaryTTL)
	}

	// 事件出口可选
	var events service.EventSink
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("init kafka producer")
		}
		defer producer.Close()
		events = producer
	}

	users := surreal.NewUserRepository(db)
	roles := surreal.NewRoleRepository(db)
	communities := surreal.NewCommunityRepository(db)
	members := surreal.NewMemberRepository(db)

	authSvc := service.NewAuthService(users, maker, ids, events)
	communitySvc := service.NewCommunityService(communities, members, users, roles, cache, ids, events)
	memberSvc := service.NewMemberService(members, communities, users, roles, ids, events)
	roleSvc := service.NewRoleService(roles, ids)

	r := router.InitRouter(
		maker,
		handler.NewAuthHandler(authSvc, log),
		handler.NewCommunityHandler(communitySvc, log),
		handler.NewMemberHandler(memberSvc, log),
		handler.NewRoleHandler(roleSvc, log),
	)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("server listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
