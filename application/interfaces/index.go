package interfaces

// ApplicationContext carries a request's parsed body and correlation
// metadata from the router into controllers and usecases. Ctx holds the
// underlying transport context (a *gin.Context at the HTTP boundary).
type ApplicationContext[T any] struct {
	Ctx       any
	Body      *T
	RequestID string
	Keys      map[string]any
}

func (ctx *ApplicationContext[T]) GetKey(key string) any {
	if ctx.Keys == nil {
		return nil
	}
	return ctx.Keys[key]
}

func (ctx *ApplicationContext[T]) SetKey(key string, value any) {
	if ctx.Keys == nil {
		ctx.Keys = map[string]any{}
	}
	ctx.Keys[key] = value
}
