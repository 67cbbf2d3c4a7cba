// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser). They smoke test robustness: no panics, no
// hangs and well-formed spans on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
