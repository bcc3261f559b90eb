package utils

// RecoverWith must be deferred directly inside a goroutine. A panic is
// handed to callback instead of taking the process down.
func RecoverWith(callback func(any)) {
	if r := recover(); r != nil && callback != nil {
		callback(r)
	}
}
