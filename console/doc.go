// Package console prints demo output: free-form lines and ASCII tables.
//
//	out := console.New(os.Stdout)
//	out.Println("key: 1")
//	out.Printf("\t%s", course.Name)
//	out.Table([]string{"Course", "Author"}, rows)
//	if err := out.Err(); err != nil {
//	    // the first failed write
//	}
package console
