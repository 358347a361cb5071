package app

import (
	"context"
	"fmt"

	"github.com/privacytools/directory/internal/command"
	"github.com/privacytools/directory/internal/datasources"
	"github.com/privacytools/directory/internal/datasources/badgerdb"
	"github.com/privacytools/directory/internal/datasources/jsonfile"
	"github.com/privacytools/directory/internal/datasources/memory"
	"github.com/privacytools/directory/internal/datasources/mysql"
	"github.com/privacytools/directory/internal/store"
	"github.com/privacytools/directory/internal/transport/web/router"
	"github.com/privacytools/directory/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	catalog := store.New()

	source, writer, err := setupCatalogSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up catalog source: %w", err)
	}

	ledger, localItems, err := setupRatingStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up rating store: %w", err)
	}
	if writer == nil && localItems != nil {
		writer = localItems
	}

	refreshCmd := command.NewRefreshCatalog(source, catalog, jsonfile.DefaultCatalog())
	if _, err := refreshCmd.Execute(ctx, command.Empty{}); err != nil {
		return nil, fmt.Errorf("loading initial catalog: %w", err)
	}

	if localItems != nil {
		persisted, err := localItems.LocalItems(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading locally persisted items: %w", err)
		}
		catalog.MergeLocal(persisted)
	}

	submitRatingCmd := command.NewSubmitRating(catalog, ledger, writer)
	addItemCmd := command.NewAddItem(catalog, writer)
	exportCmd := command.NewExportRatings(ledger)
	importCmd := command.NewImportRatings(ledger)

	httpRouter, err := router.MakeRouter(
		catalog,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDurationDefault(ctx, "LATEST_CACHE_MAX_AGE", 0),
		MustGetEnvAsIntDefault(ctx, "PAGE_SIZE_DEFAULT", 0),
		MustGetEnvAsIntDefault(ctx, "PAGE_SIZE_MAX", 0),
		submitRatingCmd,
		addItemCmd,
		exportCmd,
		importCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: GetEnvAsStringDefault("HTTP_AUTOCERT_HOSTNAME", ""),
			Router:           httpRouter,
		},
	}

	if interval := MustGetEnvAsDurationDefault(ctx, "CATALOG_REFRESH_INTERVAL", 0); interval > 0 {
		components = append(components, &catalogRefresher{
			Interval:   interval,
			RefreshCmd: refreshCmd,
		})
	}

	return components, nil
}

func setupCatalogSource(ctx context.Context) (datasources.CatalogSource, datasources.ItemWriter, error) {
	switch driver := GetEnvAsStringDefault("CATALOG_DRIVER", "jsonfile"); driver {
	case "jsonfile":
		return &jsonfile.Source{Location: MustGetEnvAsString(ctx, "CATALOG_LOCATION")}, nil, nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		repo := mysql.New(db)
		return repo, repo, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog driver [%s]", driver)
	}
}

func setupRatingStore(ctx context.Context) (datasources.RatingStore, *badgerdb.Store, error) {
	switch driver := GetEnvAsStringDefault("RATINGS_DRIVER", "badger"); driver {
	case "badger":
		s, err := badgerdb.Open(GetEnvAsStringDefault("BADGER_PATH", "data/directory"))
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "memory":
		return memory.NewRatingStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown ratings driver [%s]", driver)
	}
}
