// Package fuzztests houses Go fuzz harnesses that exercise the
// formatting pipeline (source -> lexer -> parser -> indent). Its goal
// is to smoke test robustness: no panics on arbitrary input, and the
// two load-bearing invariants (lossless round-trip and idempotent
// indentation) hold for whatever the fuzzer invents.
//
// Назначение: прогонять произвольные байты через весь конвейер и
// проверять инварианты, а не конкретные уровни отступов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
