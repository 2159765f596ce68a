package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/db"
	"github.com/ranaitsan123/alx-backend-graphql-crm/internal/graph"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	db.Init()

	schema, err := graph.NewSchema()
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	gqlHandler := graph.NewHandler(&schema)
	r.POST("/graphql", gin.WrapH(gqlHandler))
	r.GET("/graphql", gin.WrapH(gqlHandler))

	r.Run(":8080")
}
