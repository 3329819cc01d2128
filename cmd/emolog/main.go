package main

import (
	"flag"
	stdlog "log"

	"github.com/emolog/emolog/pkg/config"
	emlog "github.com/emolog/emolog/pkg/log"
)

func main() {
	configPath := flag.String("config", "", "path to emolog config file")
	prefix := flag.String("prefix", "", "custom prefix overriding the category emoji")
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			stdlog.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	sink, err := emlog.NewPlatformSink(emlog.PlatformConfig{
		SyslogEnabled: cfg.Platform.SyslogEnabled,
		SyslogNetwork: cfg.Platform.SyslogNetwork,
		SyslogAddress: cfg.Platform.SyslogAddress,
		Tag:           cfg.Platform.Tag,
	})
	if err != nil {
		stdlog.Fatalf("Failed to set up platform sink: %v", err)
	}

	logger := emlog.New(emlog.Config{
		Sink:     sink,
		Colorize: cfg.Logging.Colorize,
	})

	var opts []emlog.Option
	if *prefix != "" {
		opts = append(opts, emlog.WithPrefix(*prefix))
	}

	// Positional args become a single log line; without args, emit one
	// sample line per category.
	if args := flag.Args(); len(args) > 0 {
		logger.DebugConsole(emlog.CategoryInfo, args, opts...)
		logger.OSLog(emlog.CategoryInfo, args, opts...)
		return
	}

	categories := []emlog.Category{
		emlog.CategoryDefault,
		emlog.CategoryInfo,
		emlog.CategoryDebug,
		emlog.CategoryFault,
		emlog.CategoryFailure,
	}
	for _, c := range categories {
		logger.DebugConsole(c, []string{"sample", c.String(), "line"}, opts...)
		logger.OSLog(c, []string{"sample", c.String(), "line"}, opts...)
	}
}
