// Package async provides utilities for asynchronous programming with Go generics.
//
// The package implements a Future pattern for non-blocking operations with
// timeout support and coordination utilities for managing multiple asynchronous
// computations.
//
// # Core Types
//
// Future[T] represents the result of an asynchronous computation. It provides
// methods to wait for completion (Await), check status without blocking
// (IsComplete), and handle timeouts (AwaitWithTimeout).
//
// # Usage
//
// Basic asynchronous operation:
//
//	func fetchLogo(ctx context.Context, ref string) (image.Image, error) {
//		// fetch and decode the raster
//		return img, nil
//	}
//
//	// Execute asynchronously
//	future := async.Async(ctx, "https://example.com/logo.png", fetchLogo)
//
//	// Do other work...
//
//	// Wait for result
//	img, err := future.Await()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Using timeout:
//
//	img, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("operation timed out")
//	}
//
// # Coordination Utilities
//
// WaitAll waits for all futures to complete and returns their results in order.
// WaitAny returns as soon as any future completes, along with its index.
//
// # Pre-resolved Futures
//
// Resolved returns an already-completed future. It is useful when a caller's
// contract requires a future but the value is known synchronously:
//
//	future := async.Resolved(cachedImage)
package async
