// Package main implements very simple grpc client that can be used for testing portfoliogen grpc server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	appGrpc "github.com/m-zajac/portfoliogen/internal/api/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	serverAddr  = flag.String("s", "localhost:9090", "The server address in the format of host:port")
	handle      = flag.String("u", "", "Github user handle or profile url")
	count       = flag.Int("c", 6, "Repositories count")
	instruction = flag.String("i", "Rewrite this text to be more professional:", "Enhancement instruction")
	text        = flag.String("t", "", "Text to enhance, used when no user is given")
)

func main() {
	flag.Parse()

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()
	client := appGrpc.NewClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *handle == "" {
		result, err := client.Enhance(ctx, *instruction, *text)
		if err != nil {
			log.Fatalf("server response error: %v", err)
		}
		fmt.Println(result)
		return
	}

	repos, err := client.TopRepositories(ctx, *handle, *count)
	if err != nil {
		log.Fatalf("server response error: %v", err)
	}

	fmt.Print("  Stars |  Forks | Commits | Branches | Name\n")
	fmt.Print("--------------------------------------------------\n")
	for _, r := range repos {
		fmt.Printf("%7d | %6d | %7d | %8d | %s\n", r.Stars, r.Forks, r.Commits, r.Branches, r.Name)
	}
}
