package iterm2_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dra11y/iterm2-api/pkg/iterm2"
)

func ExampleConnect() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := iterm2.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	session, err := conn.CreateWindow(ctx, "")
	if err != nil {
		log.Fatal(err)
	}
	if err := conn.SendText(ctx, session.UniqueIdentifier, "echo hello\r"); err != nil {
		log.Fatal(err)
	}
}

func ExampleConn_GetWindows() {
	ctx := context.Background()
	conn, err := iterm2.Connect(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	windows, err := conn.GetWindows(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range windows {
		for _, tab := range w.Tabs {
			for _, s := range tab.Sessions() {
				fmt.Println(w.WindowID, tab.TabID, s.UniqueIdentifier)
			}
		}
	}
}
