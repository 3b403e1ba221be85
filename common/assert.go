package common

func MJ_Assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
