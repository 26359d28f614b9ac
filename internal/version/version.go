// Package version отдаёт сведения о сборке, зашитые через -ldflags.
package version

import "fmt"

// Service — имя сервиса в логах и в User-Agent исходящих запросов.
const Service = "dongbei-mall"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info возвращает версию, коммит и дату сборки.
func Info() (v, c, d string) { return version, commit, date }

// String — однострочное описание сборки для стартового лога.
func String() string {
	return fmt.Sprintf("%s version=%s commit=%s date=%s", Service, version, commit, date)
}

// UserAgent — значение заголовка User-Agent для клиентских запросов.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", Service, version)
}
