package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app/server"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/config"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/delivery/http"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service/course"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service/progress"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/service/report"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/storage/elastic"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/storage/postgres"
	"github.com/Liyanipatel27/learning-management-system-sub001/pkg/logger"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("starting with env: " + cfg.Env)

	ctx := context.Background()

	pg, err := postgres.NewPostgresPool(ctx, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	searchRepo := elastic.NewCourseSearchRepository(esClient, cfg.ES.Index)
	if err := searchRepo.CreateIndexIfNotExist(ctx); err != nil {
		log.FatalErr("error preparing search index", err)
	}

	courseRepo := postgres.NewCoursePostgres(pg.Pool)
	progressRepo := postgres.NewProgressPostgres(pg.Pool)

	u := service.Collection{
		CourseService:   course.NewCourseService(log, courseRepo, searchRepo),
		ProgressService: progress.NewService(log, courseRepo, progressRepo),
		ReportService:   report.NewReportService(log, courseRepo, progressRepo),
	}

	r := http.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("http server listening", "address", cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("http server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
