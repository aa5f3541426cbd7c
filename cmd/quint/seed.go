package main

import "time"

func timeSeed() int64 {
	return time.Now().UnixNano()
}
