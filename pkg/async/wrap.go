package async

// ErrAble 在 goroutine 中执行 fn，返回的 channel 送出一次结果后关闭
func ErrAble(fn func() error) <-chan error {
	ch := make(chan error, 1)
	go func() {
		ch <- fn()
		close(ch)
	}()
	return ch
}
