package rod

const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	// SignupHTML records every synthetic event on window.events so tests
	// can assert the order reactive listeners observe.
	SignupHTML = `<!DOCTYPE html>
<html>
<head>
<style>
	.offscreen { display: none; }
</style>
</head>
<body>
	<form id="signup">
		<input id="email" type="email" name="email" />
		<input id="first" type="text" name="first_name" />
		<input id="age" type="number" min="18" max="18" />
		<input id="hidden" type="text" class="offscreen" value="keep" />
		<input id="locked" type="text" value="locked" disabled />
		<select id="country" name="country">
			<option value="">Choose</option>
			<option value="de">Germany</option>
		</select>
		<input id="terms" type="checkbox" />
		<textarea id="bio"></textarea>
		<input type="submit" value="Send" />
	</form>
	<script>
		window.events = [];
		for (const el of document.querySelectorAll('input, select, textarea')) {
			for (const t of ['input', 'change', 'blur']) {
				el.addEventListener(t, () => window.events.push(el.id + ':' + t));
			}
		}
	</script>
</body>
</html>`

	// LockedHTML holds controls locked through attributes only.
	LockedHTML = `<!DOCTYPE html>
<html>
<body>
	<form>
		<select id="plan" readonly>
			<option value="free">Free</option>
			<option value="pro" selected>Pro</option>
			<option value="team">Team</option>
		</select>
		<select id="region" disabled>
			<option value="eu">EU</option>
			<option value="us" selected>US</option>
		</select>
		<input id="code" type="text" value="A1" readonly />
	</form>
	<script>
		window.events = [];
		for (const el of document.querySelectorAll('input, select, textarea')) {
			for (const t of ['input', 'change', 'blur']) {
				el.addEventListener(t, () => window.events.push(el.id + ':' + t));
			}
		}
	</script>
</body>
</html>`

	EmptyHTML = `<!DOCTYPE html>
<html>
<body>
	<p>No form here.</p>
	<button type="button">Click</button>
</body>
</html>`
)
