package session

var WithClock = withClock
