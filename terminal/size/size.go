package size

// CellCountInt is the integer type used to count cells in a terminal row
// or column, and to address offsets within a row's character storage. A
// single dimension of a terminal grid is bounded well below 65535 cells,
// so 16 bits keeps the per-row index table compact.
type CellCountInt uint16
