package app

import (
	"log/slog"
	"os"

	"github.com/humanbelnik/kinomatch/core/internal/config"
	http_init "github.com/humanbelnik/kinomatch/core/internal/delivery/http/init"
	http_identity_middleware "github.com/humanbelnik/kinomatch/core/internal/delivery/http/middleware/identity"
	http_room "github.com/humanbelnik/kinomatch/core/internal/delivery/http/room"
	http_swagger "github.com/humanbelnik/kinomatch/core/internal/delivery/http/swagger"
	ws_room "github.com/humanbelnik/kinomatch/core/internal/delivery/ws/room"
	infra_pg_init "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/init"
	infra_postgres_match "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/match"
	infra_postgres_media "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/media"
	infra_postgres_room "github.com/humanbelnik/kinomatch/core/internal/infra/postgres/room"
	infra_redis_init "github.com/humanbelnik/kinomatch/core/internal/infra/redis/init"
	infra_redis_state "github.com/humanbelnik/kinomatch/core/internal/infra/redis/state"
	infra_s3_init "github.com/humanbelnik/kinomatch/core/internal/infra/s3/init"
	infra_s3_poster "github.com/humanbelnik/kinomatch/core/internal/infra/s3/poster"
	"github.com/humanbelnik/kinomatch/core/internal/model"
	usecase_disconnect "github.com/humanbelnik/kinomatch/core/internal/usecase/disconnect"
	usecase_readiness "github.com/humanbelnik/kinomatch/core/internal/usecase/readiness"
	usecase_room "github.com/humanbelnik/kinomatch/core/internal/usecase/room"
	usecase_selection "github.com/humanbelnik/kinomatch/core/internal/usecase/selection"
	usecase_swipe "github.com/humanbelnik/kinomatch/core/internal/usecase/swipe"
)

func Go(cfg *config.Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	stateStore := infra_redis_state.New(redisConn, cfg.Room.TTL)
	roomRepository := infra_postgres_room.New(pgConn)
	matchRepository := infra_postgres_match.New(pgConn)

	var mediaCatalog infra_s3_poster.Catalog = infra_postgres_media.New(pgConn)
	if cfg.Storage.Bucket != "" {
		mediaCatalog = infra_s3_poster.New(mediaCatalog,
			infra_s3_init.MustEstablishConn(cfg.Storage),
			cfg.Storage.Bucket,
			infra_s3_poster.WithURLTTL(cfg.Storage.URLTTL),
			infra_s3_poster.WithLogger(logger),
		)
	}

	roomUC := usecase_room.New(stateStore, roomRepository, usecase_room.WithLogger(logger))
	readinessUC := usecase_readiness.New(stateStore, roomRepository, usecase_readiness.WithLogger(logger))
	selectionUC := usecase_selection.New(stateStore, cfg.Room.DraftLimit, usecase_selection.WithLogger(logger))
	swipeUC := usecase_swipe.New(readinessUC, stateStore, mediaCatalog, matchRepository, usecase_swipe.WithLogger(logger))

	// The handler and the gateway point at each other: delayed cancellations
	// are announced through the gateway.
	var gateway *ws_room.Gateway
	disconnectHandler := usecase_disconnect.New(readinessUC,
		usecase_disconnect.WithLogger(logger),
		usecase_disconnect.WithGracePeriod(cfg.Room.DisconnectGrace),
		usecase_disconnect.WithCancelledHook(func(roomID model.RoomID, userID model.UserID) {
			gateway.NotifyCancelled(roomID, userID)
		}),
	)

	hub := ws_room.NewHub(logger)
	gateway = ws_room.NewGateway(hub,
		roomUC,
		readinessUC,
		selectionUC,
		swipeUC,
		disconnectHandler,
		mediaCatalog,
		ws_room.WithLogger(logger),
	)

	identity := http_identity_middleware.New(http_identity_middleware.WithLogger(logger))

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC, readinessUC, matchRepository, mediaCatalog, identity.Identify(),
		http_room.WithLogger(logger)))
	controllerPool.Add(ws_room.NewController(gateway, identity.Identify()))
	controllerPool.Add(http_swagger.New())

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Host, cfg.HTTP.Port)
}
