/*
Package todosdk provides a client SDK and the shared wire types for the
to-do list service.

# Overview

The service authenticates browsers with a session cookie, so the Client
keeps a cookie jar. Registering or logging in stores the session cookie in
the jar and every later call on the same Client carries it:

	client := todosdk.NewClient("http://localhost:3000")

	user, err := client.Register(ctx, todosdk.RegisterRequest{
		Username: "alice",
		Password: "correct horse",
		Name:     "Alice",
	})

	list, err := client.CreateList(ctx, "Groceries")
	item, err := client.CreateItem(ctx, list.ID, "Milk")

	done := todosdk.ItemStatusCompleted
	item, err = client.UpdateItem(ctx, item.ID, todosdk.UpdateItemRequest{Status: &done})

	err = client.Logout(ctx)

# Errors

Every failing call returns an *APIError carrying the HTTP status and the
server message. Compare against the predefined errors with errors.Is:

	if errors.Is(err, todosdk.ErrUserExists) {
		// pick another username
	}

The server uses the same values to write its responses, so the messages
stay in sync between both sides.
*/
package todosdk
