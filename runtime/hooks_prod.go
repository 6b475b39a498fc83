//go:build !dev
// +build !dev

package runtime

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (h *Host) callOnInit(initializer Initializer, key string) {
	defer h.recoverHook("OnInit", key)
	initializer.OnInit()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
func (h *Host) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer h.recoverHook("OnParametersSet", key)
	receiver.OnParametersSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (h *Host) callOnDestroy(cleaner Cleaner, key string) {
	defer h.recoverHook("OnDestroy", key)
	cleaner.OnDestroy()
}

func (h *Host) recoverHook(hook, key string) {
	if rec := recover(); rec != nil {
		h.logger.Error().
			Str("hook", hook).
			Str("key", key).
			Interface("panic", rec).
			Msg("lifecycle hook panicked")
	}
}
