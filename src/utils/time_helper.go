package utils

import "time"

type TimeServiceInterface interface {
	WaitSeconds(seconds int64)
	GetNowUnixMilli() int64
	GetNowDateTimeString() string
}

type TimeHelper struct {
}

func (t *TimeHelper) WaitSeconds(seconds int64) {
	time.Sleep(time.Second * time.Duration(seconds))
}

func (t *TimeHelper) GetNowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

func (t *TimeHelper) GetNowDateTimeString() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
