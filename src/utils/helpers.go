package utils

// Paginate Translates the from/size query pair into offset/limit. The page index
// is from divided by size, so the defaults from=1,size=20 land on the first page.
func Paginate(from int, size int) (offset int, limit int) {
	if size < 1 {
		size = 20
	}
	if from < 0 {
		from = 0
	}
	page := from / size
	return page * size, size
}
