package cmd

import (
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Zachkp/devfolio/internal/content"
	"github.com/Zachkp/devfolio/internal/mailer"
	"github.com/Zachkp/devfolio/internal/metrics"
	"github.com/Zachkp/devfolio/internal/server"
	"github.com/Zachkp/devfolio/internal/site"
	"github.com/Zachkp/devfolio/internal/theme"
)

var watchContent bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Loads the site data and serves it over HTTP",
	Long: `The serve command validates and loads the profile, project, and
blog content, then starts the web server. With --watch it also reloads
the article index whenever a file under the content directory changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := site.Load(appConfig.DataDir, appConfig.ContentDir)
		if err != nil {
			log.Fatalf("Failed to load site data: %v", err)
		}

		th, err := theme.New(appConfig.Theme.Primary)
		if err != nil {
			log.Fatalf("Invalid theme configuration: %v", err)
		}

		store, err := metrics.Open(appConfig.Admin.DBPath)
		if err != nil {
			log.Fatalf("Failed to open metrics store: %v", err)
		}
		defer store.Close()
		log.Printf("Admin access available at: /admin/login")

		if watchContent {
			go watchPosts(appConfig.ContentDir, svc)
		}

		m := mailer.New(appConfig.SMTP)
		r := server.New(appConfig, svc, th, m, store, "templates/*")

		log.Printf("Serving on %s", appConfig.Addr)
		return r.Run(appConfig.Addr)
	},
}

// watchPosts reloads the post index when content files change. Events
// are debounced so one save does not trigger a reload per write.
func watchPosts(dir string, svc *site.Service) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Failed to create file watcher: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		log.Printf("Failed to watch %s: %v", dir, err)
		return
	}
	log.Printf("Watching %s for changes", dir)

	var reloadTimer *time.Timer
	debounce := 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(debounce, func() {
				idx, err := content.LoadDir(dir)
				if err != nil {
					// Keep serving the last good index; a broken draft
					// should not take the site down.
					log.Printf("Content reload failed: %v", err)
					return
				}
				svc.ReplacePosts(idx)
				log.Printf("Content reloaded: %d published posts", len(idx.Published()))
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

func init() {
	serveCmd.Flags().BoolVar(&watchContent, "watch", false, "reload articles when content files change")
	rootCmd.AddCommand(serveCmd)
}
