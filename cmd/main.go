package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"

	"github.com/vinhyan/midland-library/configs"
	"github.com/vinhyan/midland-library/internal/daemon"
	"github.com/vinhyan/midland-library/internal/db"
	"github.com/vinhyan/midland-library/internal/handlers"
	"github.com/vinhyan/midland-library/internal/middleware"
	"github.com/vinhyan/midland-library/internal/session"
	"github.com/vinhyan/midland-library/internal/utils"
	"github.com/vinhyan/midland-library/internal/views"
)

func main() {
	cfg := configs.LoadConfig()
	db.Connect(cfg.MongoURI)

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load views: %v", err)
	}

	sessionStore, err := session.NewMemDBStore()
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}
	codec := session.NewCodec(cfg.SessionSecret)

	auditCol := db.GetCollection(cfg.DBName, "audit_logs")
	auditLogger := utils.Logger{Collection: auditCol}

	bookCol := db.GetCollection(cfg.DBName, "books")
	userCol := db.GetCollection(cfg.DBName, "users")

	catalogHandler := handlers.NewCatalogHandler(bookCol, renderer)
	loanHandler := &handlers.LoanHandler{BookCol: bookCol, AuditLogger: auditLogger, Views: renderer}
	authHandler := &handlers.AuthHandler{UserCol: userCol, AuditLogger: auditLogger, Views: renderer}
	profileHandler := &handlers.ProfileHandler{BookCol: bookCol, Views: renderer}

	r := mux.NewRouter()
	r.Use(middleware.SessionMiddleware(codec, sessionStore))

	r.HandleFunc("/", catalogHandler.ListBooks).Methods("GET")
	r.HandleFunc("/borrow/{id}", loanHandler.Borrow).Methods("POST")
	r.HandleFunc("/login", authHandler.ShowLogin).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/profile", profileHandler.ShowProfile).Methods("GET")
	r.HandleFunc("/return/{id}", loanHandler.Return).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	r.PathPrefix("/css/").Handler(http.FileServer(http.Dir(cfg.AssetsDir)))
	r.PathPrefix("/images/").Handler(http.FileServer(http.Dir(cfg.AssetsDir)))

	exporterCtx, stopExporter := context.WithCancel(context.Background())
	exporter := daemon.LogExporter{Coll: auditCol}
	go exporter.Run(exporterCtx)

	var server = http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("Server starting on port", cfg.Port)
		log.Fatal(server.ListenAndServe())
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	log.Println("Shutting down gracefully...")
	stopExporter()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := db.Disconnect(ctx); err != nil {
		log.Printf("MongoDB disconnect failed: %v", err)
	}
	log.Println("Server shut down.")
}
